package state

import (
	"database/sql"
	"errors"
)

// PanelState holds the persisted UI preferences.
type PanelState struct {
	Collapsed bool   // bot audio panel display mode
	Muted     bool   // last requested bot mute state
	ServerURL string // last server connected to
}

func getPanel(db *sql.DB) (*PanelState, error) {
	row := db.QueryRow(`
		SELECT collapsed, muted, server_url
		FROM panel_state WHERE id = 1
	`)

	var state PanelState
	err := row.Scan(&state.Collapsed, &state.Muted, &state.ServerURL)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil //nolint:nilnil // no saved state is valid on first run
	}
	if err != nil {
		return nil, err
	}

	return &state, nil
}

func savePanel(db *sql.DB, state PanelState) error {
	_, err := db.Exec(`
		INSERT INTO panel_state (id, collapsed, muted, server_url)
		VALUES (1, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			collapsed = excluded.collapsed,
			muted = excluded.muted,
			server_url = excluded.server_url
	`, state.Collapsed, state.Muted, state.ServerURL)

	return err
}
