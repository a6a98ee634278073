package draftstore

import (
	"encoding/json"

	"shuttlesync/internal/domain/booking"
	"shuttlesync/internal/infra"
)

func encode(d *booking.Draft) ([]byte, error) {
	b, err := json.Marshal(d.Snapshot())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to encode draft", err)
	}
	return b, nil
}

func decode(b []byte) (*booking.Draft, error) {
	var snap booking.DraftSnapshot
	if err := json.Unmarshal(b, &snap); err != nil {
		return nil, infra.WrapRepoErr("failed to decode draft", err)
	}
	d, err := booking.RestoreDraft(snap)
	if err != nil {
		return nil, infra.WrapRepoErr("stored draft is invalid", err)
	}
	return d, nil
}

func notFound() error {
	return infra.WrapRepoErr("draft not found", nil, infra.KindNotFound)
}
