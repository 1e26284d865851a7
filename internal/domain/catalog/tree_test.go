package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalog-api/internal/domain/entity"
)

func cat(id, parent, title string) *entity.Category {
	c := &entity.Category{ID: id, Title: title, IsActive: true}
	if parent != "" {
		c.ParentID = &parent
	}
	return c
}

// kiyim
// ├── ayollar
// │   └── ko'ylak
// └── erkaklar
// kitob
func fixture() []*entity.Category {
	return []*entity.Category{
		cat("k", "", "kitob"),
		cat("e", "c", "erkaklar"),
		cat("c", "", "kiyim"),
		cat("a", "c", "ayollar"),
		cat("d", "a", "ko'ylak"),
	}
}

func titles(cs []*entity.Category) []string {
	out := make([]string, 0, len(cs))
	for _, c := range cs {
		out = append(out, c.Title)
	}
	return out
}

func TestBuildForest(t *testing.T) {
	forest := BuildForest(fixture())
	require.Len(t, forest, 2)
	assert.Equal(t, "kitob", forest[0].Category.Title)
	assert.Equal(t, "kiyim", forest[1].Category.Title)

	kiyim := forest[1]
	require.Len(t, kiyim.Children, 2)
	assert.Equal(t, "ayollar", kiyim.Children[0].Category.Title)
	assert.Equal(t, "erkaklar", kiyim.Children[1].Category.Title)
	require.Len(t, kiyim.Children[0].Children, 1)
	assert.Equal(t, "ko'ylak", kiyim.Children[0].Children[0].Category.Title)
}

func TestBuildForest_PadreAusenteOcultaSubarbol(t *testing.T) {
	// "c" (kiyim) no está: sus hijos no aparecen como raíces.
	cs := []*entity.Category{cat("k", "", "kitob"), cat("a", "c", "ayollar"), cat("d", "a", "ko'ylak")}
	forest := BuildForest(cs)
	require.Len(t, forest, 1)
	assert.Equal(t, "kitob", forest[0].Category.Title)
}

func TestRootsAndChildren(t *testing.T) {
	assert.Equal(t, []string{"kitob", "kiyim"}, titles(Roots(fixture())))
	assert.Equal(t, []string{"ayollar", "erkaklar"}, titles(Children(fixture(), "c")))
	assert.Empty(t, Children(fixture(), "k"))
}

func TestAncestors(t *testing.T) {
	assert.Equal(t, []string{"kiyim", "ayollar"}, titles(Ancestors(fixture(), "d")))
	assert.Empty(t, Ancestors(fixture(), "c"))
	assert.Nil(t, Ancestors(fixture(), "zz"))
}

func TestDescendants(t *testing.T) {
	assert.Equal(t, []string{"ayollar", "erkaklar", "ko'ylak"}, titles(Descendants(fixture(), "c")))
	assert.Empty(t, Descendants(fixture(), "d"))
}

func TestDescendants_ToleraCiclos(t *testing.T) {
	cs := []*entity.Category{cat("x", "y", "x"), cat("y", "x", "y")}
	assert.Equal(t, []string{"y"}, titles(Descendants(cs, "x")))
	assert.Equal(t, []string{"y"}, titles(Ancestors(cs, "x")))
}

func TestSubtree(t *testing.T) {
	n := Subtree(fixture(), "c")
	require.NotNil(t, n)
	assert.Equal(t, "kiyim", n.Category.Title)
	require.Len(t, n.Children, 2)
	assert.Len(t, n.Children[0].Children, 1)
	assert.Nil(t, Subtree(fixture(), "zz"))
}

func TestSubtree_PadreInactivoOculta(t *testing.T) {
	cs := fixture()
	// sin "a" (inactiva, fuera de la lista) ko'ylak queda huérfana
	var active []*entity.Category
	for _, c := range cs {
		if c.ID != "a" {
			active = append(active, c)
		}
	}
	assert.Nil(t, Subtree(active, "d"), "hijo activo de un padre inactivo no es visible")
	require.NotNil(t, Subtree(active, "c"))

	cs[3].IsActive = false // "a" en la lista pero inactiva
	assert.Nil(t, Subtree(cs, "a"))
	assert.Nil(t, Subtree(cs, "d"))
	n := Subtree(cs, "c")
	require.NotNil(t, n)
	require.Len(t, n.Children, 1)
	assert.Equal(t, "erkaklar", n.Children[0].Category.Title)
}

func TestWouldCycle(t *testing.T) {
	assert.True(t, WouldCycle(fixture(), "c", "d"), "un descendiente no puede ser el nuevo padre")
	assert.True(t, WouldCycle(fixture(), "c", "c"))
	assert.False(t, WouldCycle(fixture(), "d", "k"))
	assert.False(t, WouldCycle(fixture(), "d", ""))
}
