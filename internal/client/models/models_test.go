package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/dmitrijs2005/catalogkeeper/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVersion(t *testing.T) {
	tests := []struct {
		in      string
		want    Version
		wantErr bool
	}{
		{in: "v1", want: VersionBasic},
		{in: "V2", want: VersionFull},
		{in: "basic", want: VersionBasic},
		{in: " full ", want: VersionFull},
		{in: "v3", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseVersion(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, common.ErrUnsupportedVersion)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestVersion_KeysAndSeeds(t *testing.T) {
	assert.Equal(t, "crud-products-data", VersionBasic.StorageKey())
	assert.Equal(t, "crud-products-data-full", VersionFull.StorageKey())

	seed := VersionBasic.Seed()
	require.Len(t, seed, 2)
	assert.Equal(t, int64(1), seed[0].ID)
	assert.Equal(t, int64(2), seed[1].ID)

	assert.NotNil(t, VersionFull.Seed())
	assert.Empty(t, VersionFull.Seed())

	assert.Equal(t, []Field{FieldName, FieldDescription}, VersionBasic.Fields())
	assert.Len(t, VersionFull.Fields(), 7)
}

func TestDate_JSON(t *testing.T) {
	d, err := ParseDate("2024-02-29")
	require.NoError(t, err)

	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-02-29"`, string(b))

	var back Date
	require.NoError(t, json.Unmarshal(b, &back))
	assert.True(t, back.Equal(d.Time))

	var empty Date
	require.NoError(t, json.Unmarshal([]byte(`""`), &empty))
	assert.True(t, empty.IsZero())

	require.Error(t, json.Unmarshal([]byte(`"29/02/2024"`), &back))
	require.Error(t, json.Unmarshal([]byte(`20240229`), &back))
}

func TestParseDate_RFC3339TruncatesToDay(t *testing.T) {
	d, err := ParseDate("2024-05-01T17:45:00Z")
	require.NoError(t, err)
	assert.Equal(t, "2024-05-01", d.String())
	assert.Equal(t, time.UTC, d.Location())
	assert.Zero(t, d.Hour())
}

func TestParseMoment_KeepsInstant(t *testing.T) {
	m, err := ParseMoment("2024-05-01T17:45:00+02:00")
	require.NoError(t, err)
	assert.True(t, m.Equal(time.Date(2024, 5, 1, 15, 45, 0, 0, time.UTC)))

	m, err = ParseMoment("2024-05-01")
	require.NoError(t, err)
	assert.True(t, m.Equal(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)))

	_, err = ParseMoment("May 1st")
	require.Error(t, err)
}

func TestDraft_SetGet(t *testing.T) {
	var d Draft
	for _, f := range []Field{FieldName, FieldDescription, FieldPrice, FieldCategory, FieldReleaseDate, FieldStock} {
		require.NoError(t, d.Set(f, "x-"+string(f)))
		assert.Equal(t, "x-"+string(f), d.Get(f))
	}

	require.NoError(t, d.Set(FieldIsActive, "true"))
	assert.True(t, d.IsActive)
	assert.Equal(t, "true", d.Get(FieldIsActive))

	require.ErrorIs(t, d.Set(FieldIsActive, "maybe"), common.ErrInvalidValue)
	require.ErrorIs(t, d.Set(Field("color"), "red"), common.ErrUnknownField)
}

func TestParseField(t *testing.T) {
	f, err := ParseField("releaseDate")
	require.NoError(t, err)
	assert.Equal(t, FieldReleaseDate, f)

	_, err = ParseField("ReleaseDate")
	require.ErrorIs(t, err, common.ErrUnknownField)
}

func TestDraftFromProduct(t *testing.T) {
	date, err := ParseDate("2023-10-01")
	require.NoError(t, err)
	p := Product{ID: 7, Name: "Tea", Description: "Green", Price: 2.5, Category: "Beverage", ReleaseDate: date, Stock: 0, IsActive: true}

	full := DraftFromProduct(p, VersionFull)
	assert.Equal(t, Draft{
		Name: "Tea", Description: "Green", Price: "2.5", Category: "Beverage",
		ReleaseDate: "2023-10-01", Stock: "0", IsActive: true,
	}, full)

	basic := DraftFromProduct(p, VersionBasic)
	assert.Equal(t, Draft{Name: "Tea", Description: "Green"}, basic)
}

func TestValidationErrors(t *testing.T) {
	v := ValidationErrors{FieldStock: "bad stock", FieldName: "bad name"}
	assert.False(t, v.OK())
	assert.Equal(t, []Field{FieldName, FieldStock}, v.Fields())
	assert.Equal(t, "validation failed: name: bad name; stock: bad stock", v.Error())

	c := v.Clone()
	delete(c, FieldName)
	assert.Len(t, v, 2)

	assert.True(t, ValidationErrors{}.OK())
}

func TestNotification_Expired(t *testing.T) {
	at := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	n := Notification{Message: MsgCreated, Severity: SeveritySuccess, At: at}
	assert.False(t, n.Expired(at.Add(2999*time.Millisecond), 3*time.Second))
	assert.True(t, n.Expired(at.Add(3*time.Second), 3*time.Second))
}

func TestIsCategory(t *testing.T) {
	assert.True(t, IsCategory("Snack"))
	assert.False(t, IsCategory("snack"))
	assert.False(t, IsCategory(""))
}
