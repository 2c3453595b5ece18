package store

import "github.com/dmitrijs2005/catalogkeeper/internal/client/models"

// The functions below never modify their input slice.

// InsertFront returns a new list with p prepended.
func InsertFront(list []models.Product, p models.Product) []models.Product {
	out := make([]models.Product, 0, len(list)+1)
	out = append(out, p)
	return append(out, list...)
}

// Replace returns a copy of list where the product with id has been passed
// through update. The id is restored after update runs. found is false (and
// list is returned unchanged) if id is absent.
func Replace(list []models.Product, id int64, update func(*models.Product)) ([]models.Product, bool) {
	idx := indexOf(list, id)
	if idx < 0 {
		return list, false
	}
	out := clone(list)
	update(&out[idx])
	out[idx].ID = id
	return out, true
}

// Remove returns a copy of list without the product with id.
func Remove(list []models.Product, id int64) ([]models.Product, bool) {
	idx := indexOf(list, id)
	if idx < 0 {
		return list, false
	}
	out := make([]models.Product, 0, len(list)-1)
	out = append(out, list[:idx]...)
	return append(out, list[idx+1:]...), true
}

func indexOf(list []models.Product, id int64) int {
	for i := range list {
		if list[i].ID == id {
			return i
		}
	}
	return -1
}

func clone(list []models.Product) []models.Product {
	out := make([]models.Product, len(list))
	copy(out, list)
	return out
}
