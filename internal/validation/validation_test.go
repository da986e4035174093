package validation

import (
	"strings"
	"testing"

	"github.com/dmitrijs2005/factionwatch/internal/common"
	"github.com/dmitrijs2005/factionwatch/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStruct_Faction(t *testing.T) {
	tests := []struct {
		name    string
		faction models.Faction
		wantErr string
	}{
		{name: "ok", faction: models.Faction{Name: "Grove Street", Color: "#00ff00"}},
		{name: "missing name", faction: models.Faction{Color: "#00ff00"}, wantErr: "Faction.Name (required)"},
		{name: "bad color", faction: models.Faction{Name: "Ballas", Color: "purple"}, wantErr: "Faction.Color (hexcolor)"},
		{name: "member status", faction: models.Faction{Name: "LSPD", Members: []models.Member{{Name: "A", Status: "sleeping"}}},
			wantErr: "Faction.Members[0].Status (oneof)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Struct(tt.faction)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, common.ErrorValidation)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestMaxGraphemes_CountsUserPerceivedCharacters(t *testing.T) {
	// 64 flags are 128 runes but 64 graphemes.
	flags := strings.Repeat("🇷🇺", 64)
	require.NoError(t, Struct(models.Member{Name: flags}))

	require.Error(t, Struct(models.Member{Name: flags + "x"}))
	require.NoError(t, Struct(models.Member{Name: strings.Repeat("я", 64)}))
}

func TestVar(t *testing.T) {
	require.NoError(t, Var("Vasya", "required,maxgraphemes=8"))

	err := Var("", "required")
	require.ErrorIs(t, err, common.ErrorValidation)

	require.Error(t, Var("too-long-name", "maxgraphemes=4"))
}

func TestStruct_Backup(t *testing.T) {
	dur := int64(-5)
	b := models.Backup{
		Accounts: []models.Account{{ID: "1", Name: "main"}},
		Sessions: []models.AccountSession{{ID: "s1", AccountID: "1", Duration: &dur}},
	}
	err := Struct(b)
	require.ErrorIs(t, err, common.ErrorValidation)
	assert.Contains(t, err.Error(), "Backup.Sessions[0].Duration (gte)")
}
