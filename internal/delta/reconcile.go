package delta

import "time"

// Syncable is the capability set a type needs to be reconciled: a stable id
// and the time of its last mutation.
type Syncable interface {
	GetID() int64
	GetUpdatedOnUtc() time.Time
}

// Result is the outcome of [Reconcile].
type Result[T Syncable] struct {
	// ToUpsert keeps the order of the authoritative items.
	ToUpsert []T
	// ToDelete keeps the order of the client's ids, without duplicates.
	ToDelete []int64
}

// Reconcile compares the ids a client holds with the authoritative items.
//
// An item is upserted when the client does not hold it, when lastUpdate is
// nil, or when it was updated strictly after lastUpdate. An item updated
// exactly at lastUpdate and already held by the client is skipped.
// Every held id that is absent from items is deleted.
//
// Reconcile is pure and never fails; ids are not validated here.
func Reconcile[T Syncable](idsInDb []int64, lastUpdate *time.Time, items []T) Result[T] {
	held := make(map[int64]struct{}, len(idsInDb))
	for _, id := range idsInDb {
		held[id] = struct{}{}
	}

	owned := make(map[int64]struct{}, len(items))
	toUpsert := make([]T, 0, len(items))
	for _, item := range items {
		id := item.GetID()
		owned[id] = struct{}{}

		_, isHeld := held[id]
		if !isHeld || lastUpdate == nil || item.GetUpdatedOnUtc().After(*lastUpdate) {
			toUpsert = append(toUpsert, item)
		}
	}

	toDelete := make([]int64, 0)
	reported := make(map[int64]struct{})
	for _, id := range idsInDb {
		if _, ok := owned[id]; ok {
			continue
		}
		if _, ok := reported[id]; ok {
			continue
		}
		reported[id] = struct{}{}
		toDelete = append(toDelete, id)
	}

	return Result[T]{ToUpsert: toUpsert, ToDelete: toDelete}
}
