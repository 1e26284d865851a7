// Package catalog contiene las operaciones puras sobre el árbol de categorías (padre → hijos).
package catalog

import (
	"sort"
	"strings"

	"github.com/jhoicas/catalog-api/internal/domain/entity"
)

// Node categoría con sus hijos ya resueltos.
type Node struct {
	Category *entity.Category
	Children []*Node
}

// BuildForest arma el bosque a partir de una lista plana. Las raíces son las categorías sin padre;
// una categoría cuyo padre no está en la lista queda fuera (un padre inactivo oculta su subárbol).
// Hermanos ordenados por título.
func BuildForest(categories []*entity.Category) []*Node {
	nodes := make(map[string]*Node, len(categories))
	for _, c := range categories {
		if c == nil {
			continue
		}
		nodes[c.ID] = &Node{Category: c}
	}
	var roots []*Node
	for _, c := range categories {
		if c == nil {
			continue
		}
		n := nodes[c.ID]
		if c.IsRoot() {
			roots = append(roots, n)
			continue
		}
		if parent, ok := nodes[*c.ParentID]; ok && parent != n {
			parent.Children = append(parent.Children, n)
		}
	}
	for _, n := range nodes {
		sortByTitle(n.Children)
	}
	sortByTitle(roots)
	return roots
}

// Subtree devuelve el nodo id con sus descendientes activos. Es nil si id no está en la lista,
// está inactivo o algún ancestro falta o está inactivo: misma visibilidad que BuildForest.
func Subtree(categories []*entity.Category, id string) *Node {
	byID := index(categories)
	c, ok := byID[id]
	if !ok || !reachable(byID, c) {
		return nil
	}
	children := childrenIndex(categories)
	visited := map[string]bool{}
	var build func(c *entity.Category) *Node
	build = func(c *entity.Category) *Node {
		visited[c.ID] = true
		n := &Node{Category: c}
		for _, ch := range children[c.ID] {
			if visited[ch.ID] || !ch.IsActive {
				continue
			}
			n.Children = append(n.Children, build(ch))
		}
		sortByTitle(n.Children)
		return n
	}
	return build(c)
}

// Roots filtra las categorías sin padre, ordenadas por título.
func Roots(categories []*entity.Category) []*entity.Category {
	var out []*entity.Category
	for _, c := range categories {
		if c != nil && c.IsRoot() {
			out = append(out, c)
		}
	}
	sortCategories(out)
	return out
}

// Children hijos directos de parentID, ordenados por título.
func Children(categories []*entity.Category, parentID string) []*entity.Category {
	out := append([]*entity.Category(nil), childrenIndex(categories)[parentID]...)
	sortCategories(out)
	return out
}

// Ancestors cadena de ancestros de id, desde la raíz hasta el padre directo.
// Se detiene si encuentra un ciclo o un padre ausente.
func Ancestors(categories []*entity.Category, id string) []*entity.Category {
	byID := index(categories)
	c, ok := byID[id]
	if !ok {
		return nil
	}
	var chain []*entity.Category
	seen := map[string]bool{id: true}
	for !c.IsRoot() {
		parent, ok := byID[*c.ParentID]
		if !ok || seen[parent.ID] {
			break
		}
		seen[parent.ID] = true
		chain = append(chain, parent)
		c = parent
	}
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain
}

// Descendants todos los descendientes de id en anchura (iterativo, tolera ciclos).
func Descendants(categories []*entity.Category, id string) []*entity.Category {
	children := childrenIndex(categories)
	var out []*entity.Category
	seen := map[string]bool{id: true}
	queue := []string{id}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		kids := append([]*entity.Category(nil), children[cur]...)
		sortCategories(kids)
		for _, ch := range kids {
			if seen[ch.ID] {
				continue
			}
			seen[ch.ID] = true
			out = append(out, ch)
			queue = append(queue, ch.ID)
		}
	}
	return out
}

// WouldCycle indica si asignar newParentID como padre de id crearía un ciclo.
func WouldCycle(categories []*entity.Category, id, newParentID string) bool {
	if newParentID == "" {
		return false
	}
	if newParentID == id {
		return true
	}
	for _, d := range Descendants(categories, id) {
		if d.ID == newParentID {
			return true
		}
	}
	return false
}

// reachable indica si c y toda su cadena de padres están activos y presentes en byID.
func reachable(byID map[string]*entity.Category, c *entity.Category) bool {
	seen := map[string]bool{}
	for {
		if !c.IsActive || seen[c.ID] {
			return false
		}
		if c.IsRoot() {
			return true
		}
		seen[c.ID] = true
		parent, ok := byID[*c.ParentID]
		if !ok {
			return false
		}
		c = parent
	}
}

func index(categories []*entity.Category) map[string]*entity.Category {
	m := make(map[string]*entity.Category, len(categories))
	for _, c := range categories {
		if c != nil {
			m[c.ID] = c
		}
	}
	return m
}

func childrenIndex(categories []*entity.Category) map[string][]*entity.Category {
	m := make(map[string][]*entity.Category)
	for _, c := range categories {
		if c == nil || c.IsRoot() {
			continue
		}
		m[*c.ParentID] = append(m[*c.ParentID], c)
	}
	return m
}

func sortByTitle(nodes []*Node) {
	sort.SliceStable(nodes, func(i, j int) bool {
		return less(nodes[i].Category, nodes[j].Category)
	})
}

func sortCategories(cs []*entity.Category) {
	sort.SliceStable(cs, func(i, j int) bool { return less(cs[i], cs[j]) })
}

func less(a, b *entity.Category) bool {
	ta, tb := strings.ToLower(a.Title), strings.ToLower(b.Title)
	if ta != tb {
		return ta < tb
	}
	return a.ID < b.ID
}

// IsAttachable solo categorías activas con padre pueden asignarse a un producto.
func IsAttachable(c *entity.Category) bool {
	return c.Attachable()
}
