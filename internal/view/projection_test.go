package view

import (
	"testing"

	"github.com/avc-dev/url-shortener-ui/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestVisible(t *testing.T) {
	items := []model.ShortURL{{ID: "1"}, {ID: "2"}, {ID: "3"}}

	tests := []struct {
		name    string
		pending map[string]struct{}
		want    []string
	}{
		{
			name:    "nothing pending",
			pending: nil,
			want:    []string{"1", "2", "3"},
		},
		{
			name:    "pending item hidden",
			pending: map[string]struct{}{"2": {}},
			want:    []string{"1", "3"},
		},
		{
			name:    "pending id not on page",
			pending: map[string]struct{}{"99": {}},
			want:    []string{"1", "2", "3"},
		},
		{
			name:    "everything pending",
			pending: map[string]struct{}{"1": {}, "2": {}, "3": {}},
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			visible := Visible(items, tt.pending)

			got := make([]string, 0, len(visible))
			for _, item := range visible {
				got = append(got, item.ID)
			}
			assert.Equal(t, tt.want, got)
			assert.Len(t, items, 3, "исходный срез не меняется")
		})
	}
}
