package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/catalog-api/internal/application/dto"
	"github.com/jhoicas/catalog-api/internal/application/ports"
	"github.com/jhoicas/catalog-api/internal/domain"
	"github.com/jhoicas/catalog-api/internal/domain/catalog"
	"github.com/jhoicas/catalog-api/internal/domain/entity"
	"github.com/jhoicas/catalog-api/internal/domain/repository"
)

const maxCategoryTitle = 50

// CategoryUseCase árbol de categorías. Solo las activas son visibles; el árbol se arma en memoria.
type CategoryUseCase struct {
	repo    repository.CategoryRepository
	storage ports.FileStorage
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository, storage ports.FileStorage) *CategoryUseCase {
	return &CategoryUseCase{repo: repo, storage: storage}
}

// ListTree raíces activas paginadas, cada una con sus hijos activos anidados.
func (uc *CategoryUseCase) ListTree(ctx context.Context, page dto.PageRequest) (dto.ListResponse[dto.CategoryTreeResponse], error) {
	page.DefaultPage()
	active, err := uc.repo.ListActive(ctx)
	if err != nil {
		return dto.ListResponse[dto.CategoryTreeResponse]{}, err
	}
	roots := catalog.BuildForest(active)
	total := len(roots)
	start := min(page.Offset, total)
	end := min(start+page.Limit, total)

	items := make([]dto.CategoryTreeResponse, 0, end-start)
	for _, n := range roots[start:end] {
		items = append(items, uc.toTree(n))
	}
	return dto.NewListResponse(items, page, total), nil
}

// Parents lista plana de raíces activas.
func (uc *CategoryUseCase) Parents(ctx context.Context) ([]dto.CategoryResponse, error) {
	active, err := uc.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	roots := catalog.Roots(active)
	out := make([]dto.CategoryResponse, 0, len(roots))
	for _, c := range roots {
		out = append(out, uc.toResponse(c))
	}
	return out, nil
}

// Children hijos activos directos de una categoría activa.
func (uc *CategoryUseCase) Children(ctx context.Context, id string) ([]dto.CategoryResponse, error) {
	active, err := uc.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	if catalog.Subtree(active, id) == nil {
		return nil, domain.ErrNotFound
	}
	kids := catalog.Children(active, id)
	out := make([]dto.CategoryResponse, 0, len(kids))
	for _, c := range kids {
		out = append(out, uc.toResponse(c))
	}
	return out, nil
}

// Get categoría activa con su subárbol y la ruta desde la raíz.
func (uc *CategoryUseCase) Get(ctx context.Context, id string) (*dto.CategoryDetailResponse, error) {
	active, err := uc.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	node := catalog.Subtree(active, id)
	if node == nil {
		return nil, domain.ErrNotFound
	}
	ancestors := catalog.Ancestors(active, id)
	path := make([]dto.CategoryResponse, 0, len(ancestors))
	for _, a := range ancestors {
		path = append(path, uc.toResponse(a))
	}
	return &dto.CategoryDetailResponse{CategoryTreeResponse: uc.toTree(node), Path: path}, nil
}

// Create alta de categoría con ícono opcional.
func (uc *CategoryUseCase) Create(ctx context.Context, in dto.CategoryRequest, icon *ports.Upload) (*dto.CategoryResponse, error) {
	if err := requireFields(in.Missing()); err != nil {
		return nil, err
	}
	now := time.Now()
	c := &entity.Category{
		ID:          uuid.New().String(),
		ProductType: entity.ProductTypeProduct,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.apply(ctx, c, in); err != nil {
		return nil, err
	}
	path, err := saveUpload(ctx, uc.storage, folderCategory, icon)
	if err != nil {
		return nil, err
	}
	c.Icon = path
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	resp := uc.toResponse(c)
	return &resp, nil
}

// Update reemplazo (partial=false) o edición parcial. Re-parentar no puede crear ciclos.
func (uc *CategoryUseCase) Update(ctx context.Context, id string, in dto.CategoryRequest, icon *ports.Upload, partial bool) (*dto.CategoryResponse, error) {
	if err := checkRequired(partial, in.Missing()); err != nil {
		return nil, err
	}
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.apply(ctx, c, in); err != nil {
		return nil, err
	}
	if icon != nil {
		path, err := saveUpload(ctx, uc.storage, folderCategory, icon)
		if err != nil {
			return nil, err
		}
		c.Icon = path
	}
	c.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	resp := uc.toResponse(c)
	return &resp, nil
}

// Delete borra la categoría y, en cascada, sus descendientes.
func (uc *CategoryUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

// apply copia los campos presentes de in sobre c y valida el resultado.
func (uc *CategoryUseCase) apply(ctx context.Context, c *entity.Category, in dto.CategoryRequest) error {
	ve := &domain.ValidationError{}
	if in.Title != nil {
		c.Title = strings.TrimSpace(*in.Title)
		if c.Title == "" {
			ve.Add("title", "obligatorio")
		}
		checkLen(ve, "title", c.Title, maxCategoryTitle)
	}
	if in.ProductType != nil {
		c.ProductType = entity.ProductType(*in.ProductType)
		if !c.ProductType.Valid() {
			ve.Add("product_type", "debe ser book, clothing o product")
		}
	}
	if in.IsActive != nil {
		c.IsActive = *in.IsActive
	}
	if in.ParentID != nil {
		parentID := optionalID(in.ParentID)
		if parentID != nil {
			if err := uc.checkParent(ctx, c.ID, *parentID, ve); err != nil {
				return err
			}
		}
		c.ParentID = parentID
	}
	return ve.OrNil()
}

func (uc *CategoryUseCase) checkParent(ctx context.Context, id, parentID string, ve *domain.ValidationError) error {
	parent, err := uc.repo.GetByID(ctx, parentID)
	if err != nil {
		return err
	}
	if parent == nil {
		ve.Add("parent_id", "no existe")
		return nil
	}
	all, err := uc.repo.ListAll(ctx)
	if err != nil {
		return err
	}
	if catalog.WouldCycle(all, id, parentID) {
		ve.Add("parent_id", "crearía un ciclo")
	}
	return nil
}

func (uc *CategoryUseCase) toResponse(c *entity.Category) dto.CategoryResponse {
	return dto.CategoryResponse{
		ID:          c.ID,
		ParentID:    c.ParentID,
		Title:       c.Title,
		Icon:        mediaURL(uc.storage, c.Icon),
		ProductType: string(c.ProductType),
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func (uc *CategoryUseCase) toTree(n *catalog.Node) dto.CategoryTreeResponse {
	out := dto.CategoryTreeResponse{
		CategoryResponse: uc.toResponse(n.Category),
		Children:         make([]dto.CategoryTreeResponse, 0, len(n.Children)),
	}
	for _, ch := range n.Children {
		out.Children = append(out.Children, uc.toTree(ch))
	}
	return out
}
