// Package memory provides in-process implementations of the repository
// interfaces. Documents are held BSON-encoded so every read hands out a fresh
// copy and updates merge exactly like a MongoDB $set on top-level fields.
package memory

import (
	"sync"

	"github.com/ArowuTest/blood-donation-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type collection[T any] struct {
	mu   sync.RWMutex
	docs map[primitive.ObjectID][]byte
	// uniqueKey, when set, must differ across all documents. Empty keys are ignored.
	uniqueKey func(*T) string
}

func newCollection[T any](uniqueKey func(*T) string) *collection[T] {
	return &collection[T]{
		docs:      map[primitive.ObjectID][]byte{},
		uniqueKey: uniqueKey,
	}
}

// conflicts reports whether key is held by a document other than self. Caller holds mu.
func (c *collection[T]) conflicts(self primitive.ObjectID, key string) (bool, error) {
	if c.uniqueKey == nil || key == "" {
		return false, nil
	}
	for id, raw := range c.docs {
		if id == self {
			continue
		}
		var other T
		if err := bson.Unmarshal(raw, &other); err != nil {
			return false, err
		}
		if c.uniqueKey(&other) == key {
			return true, nil
		}
	}
	return false, nil
}

func (c *collection[T]) insert(id primitive.ObjectID, doc *T) error {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.uniqueKey != nil {
		dup, err := c.conflicts(id, c.uniqueKey(doc))
		if err != nil {
			return err
		}
		if dup {
			return repositories.ErrDuplicate
		}
	}
	c.docs[id] = raw
	return nil
}

func (c *collection[T]) get(id primitive.ObjectID) (*T, error) {
	c.mu.RLock()
	raw, ok := c.docs[id]
	c.mu.RUnlock()
	if !ok {
		return nil, repositories.ErrNotFound
	}

	var doc T
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// all returns a snapshot of every document matching keep
func (c *collection[T]) all(keep func(*T) bool) ([]*T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	docs := make([]*T, 0, len(c.docs))
	for _, raw := range c.docs {
		var doc T
		if err := bson.Unmarshal(raw, &doc); err != nil {
			return nil, err
		}
		if keep == nil || keep(&doc) {
			docs = append(docs, &doc)
		}
	}
	return docs, nil
}

func (c *collection[T]) count(keep func(*T) bool) (int64, error) {
	docs, err := c.all(keep)
	if err != nil {
		return 0, err
	}
	return int64(len(docs)), nil
}

// update merges set into the stored document. The merged document is decoded
// into T before it is kept, so values of the wrong shape are rejected.
func (c *collection[T]) update(id primitive.ObjectID, set bson.M) error {
	return c.updateIf(id, nil, set)
}

// updateIf is update guarded by match, evaluated on the stored document under
// the same lock. A document failing match is reported as ErrNotFound.
func (c *collection[T]) updateIf(id primitive.ObjectID, match func(*T) bool, set bson.M) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	raw, ok := c.docs[id]
	if !ok {
		return repositories.ErrNotFound
	}
	if match != nil {
		var current T
		if err := bson.Unmarshal(raw, &current); err != nil {
			return err
		}
		if !match(&current) {
			return repositories.ErrNotFound
		}
	}

	merged := bson.M{}
	if err := bson.Unmarshal(raw, &merged); err != nil {
		return err
	}
	for k, v := range set {
		merged[k] = v
	}
	mergedRaw, err := bson.Marshal(merged)
	if err != nil {
		return err
	}

	var doc T
	if err := bson.Unmarshal(mergedRaw, &doc); err != nil {
		return err
	}
	if c.uniqueKey != nil {
		dup, err := c.conflicts(id, c.uniqueKey(&doc))
		if err != nil {
			return err
		}
		if dup {
			return repositories.ErrDuplicate
		}
	}

	canonical, err := bson.Marshal(&doc)
	if err != nil {
		return err
	}
	c.docs[id] = canonical
	return nil
}

func (c *collection[T]) delete(id primitive.ObjectID) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.docs[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(c.docs, id)
	return nil
}
