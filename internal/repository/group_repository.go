package repository

import (
	"strings"

	"github.com/iliyamo/hubzz-economy/internal/model"
)

// CreateGroup inserts a group with a zero balance.  The owner must exist.
func (tx *Tx) CreateGroup(name string, ownerID uint64) (*model.Group, error) {
	if err := tx.checkWritable(); err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidArgument
	}
	if _, err := tx.Player(ownerID); err != nil {
		return nil, err
	}
	g := &model.Group{ID: tx.st.nextGroupID, Name: name, OwnerID: ownerID}
	tx.st.nextGroupID++
	tx.st.groups[g.ID] = g
	return g, nil
}

// Group returns the live record for id.
func (tx *Tx) Group(id uint64) (*model.Group, error) {
	g, ok := tx.st.groups[id]
	if !ok {
		return nil, ErrGroupNotFound
	}
	return g, nil
}
