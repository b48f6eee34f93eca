package repository

import (
	"sort"
	"strings"

	"github.com/iliyamo/hubzz-economy/internal/model"
)

// CreatePlayer inserts a player with zeroed counters and the base role.
// The username is trimmed; blank names return ErrInvalidArgument and
// registered names return ErrUsernameTaken.
func (tx *Tx) CreatePlayer(username string) (*model.Player, error) {
	if err := tx.checkWritable(); err != nil {
		return nil, err
	}
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, ErrInvalidArgument
	}
	if _, ok := tx.st.usernames[username]; ok {
		return nil, ErrUsernameTaken
	}
	p := &model.Player{
		ID:       tx.st.nextPlayerID,
		Username: username,
		Roles:    []string{model.RolePlayer},
		Badges:   []string{},
	}
	tx.st.nextPlayerID++
	tx.st.players[p.ID] = p
	tx.st.usernames[username] = p.ID
	return p, nil
}

// Player returns the live record for id.
func (tx *Tx) Player(id uint64) (*model.Player, error) {
	p, ok := tx.st.players[id]
	if !ok {
		return nil, ErrPlayerNotFound
	}
	return p, nil
}

// PlayerByUsername looks a player up by exact username.
func (tx *Tx) PlayerByUsername(username string) (*model.Player, error) {
	id, ok := tx.st.usernames[strings.TrimSpace(username)]
	if !ok {
		return nil, ErrPlayerNotFound
	}
	return tx.Player(id)
}

// Players returns copies of all players ordered by id.
func (tx *Tx) Players() []model.Player {
	out := make([]model.Player, 0, len(tx.st.players))
	for _, p := range tx.st.players {
		out = append(out, p.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
