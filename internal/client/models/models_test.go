package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestID_UnmarshalNumberAndString(t *testing.T) {
	var c Category
	require.NoError(t, json.Unmarshal([]byte(`{"id": 7, "title": "Work"}`), &c))
	assert.Equal(t, ID("7"), c.ID)

	require.NoError(t, json.Unmarshal([]byte(`{"id": "all", "title": "All"}`), &c))
	assert.Equal(t, AllCategoryID, c.ID)

	require.NoError(t, json.Unmarshal([]byte(`{"id": null, "title": "x"}`), &c))
	assert.True(t, c.ID.IsZero())

	require.Error(t, json.Unmarshal([]byte(`{"id": 1.5}`), &c))
}

func TestID_MarshalNumericAsNumber(t *testing.T) {
	b, err := json.Marshal(NoteInput{Title: "t", Category: "3", Content: "c", FontSize: 16, FontStyle: "Arial"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"t","category":3,"content":"c","font_size":16,"font_style":"Arial"}`, string(b))

	b, err = json.Marshal(ID("abc"))
	require.NoError(t, err)
	assert.Equal(t, `"abc"`, string(b))

	b, err = json.Marshal(ID(""))
	require.NoError(t, err)
	assert.Equal(t, `null`, string(b))
}

func TestID_IsAll(t *testing.T) {
	assert.True(t, ID("").IsAll())
	assert.True(t, AllCategoryID.IsAll())
	assert.False(t, ID("1").IsAll())
}

func TestNote_WithDefaultsAndInput(t *testing.T) {
	n := Note{ID: "1", Title: "t", Category: "2", Content: "c", Pinned: true}.WithDefaults()
	assert.Equal(t, DefaultFontSize, n.FontSize)
	assert.Equal(t, DefaultFontStyle, n.FontStyle)

	in := n.Input()
	assert.Equal(t, NoteInput{Title: "t", Category: "2", Content: "c", Pinned: true, FontSize: 16, FontStyle: "Calibri Body"}, in)

	kept := Note{FontSize: 24, FontStyle: "Arial"}.WithDefaults()
	assert.Equal(t, 24, kept.FontSize)
	assert.Equal(t, "Arial", kept.FontStyle)
}

func TestValidateNotesAndCategories(t *testing.T) {
	require.NoError(t, ValidateNotes([]Note{{ID: "1"}, {ID: "2"}}))
	require.ErrorIs(t, ValidateNotes([]Note{{ID: "1"}, {}}), ErrMissingID)

	require.NoError(t, ValidateCategories([]Category{{ID: "1", Title: "Work"}}))
	require.ErrorIs(t, ValidateCategories([]Category{{Title: "x"}}), ErrMissingID)
	assert.Equal(t, Category{ID: "all", Title: "All"}, AllCategory())
}

func TestGrammarResult_Shapes(t *testing.T) {
	var g GrammarResult
	require.NoError(t, json.Unmarshal([]byte(`{"correctedText":"Fixed."}`), &g))
	require.NoError(t, g.Validate())
	assert.False(t, g.NoFix())
	assert.Equal(t, "Fixed.", *g.CorrectedText)

	g = GrammarResult{}
	require.NoError(t, json.Unmarshal([]byte(`{"message":"No fix required!"}`), &g))
	require.NoError(t, g.Validate())
	assert.True(t, g.NoFix())

	g = GrammarResult{}
	require.NoError(t, json.Unmarshal([]byte(`{"message":"something else"}`), &g))
	require.ErrorIs(t, g.Validate(), ErrUnexpectedShape)
}

func TestTokenAndSummaryValidation(t *testing.T) {
	require.NoError(t, TokenPair{Access: "a", Refresh: "r"}.Validate())
	require.ErrorIs(t, TokenPair{Access: "a"}.Validate(), ErrMissingToken)
	require.NoError(t, RefreshResult{Access: "a"}.Validate())
	require.ErrorIs(t, RefreshResult{}.Validate(), ErrMissingToken)

	var s SummaryResult
	require.ErrorIs(t, s.Validate(), ErrUnexpectedShape)
	require.NoError(t, json.Unmarshal([]byte(`{"summary":""}`), &s))
	require.NoError(t, s.Validate())

	require.NoError(t, Profile{Username: "bob"}.Validate())
	require.ErrorIs(t, Profile{}.Validate(), ErrUnexpectedShape)
}
