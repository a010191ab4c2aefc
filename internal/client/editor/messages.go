package editor

const (
	msgTitleRequired    = "Please fill in the title for the note."
	msgCategoryRequired = "Please select a category."
	msgContentRequired  = "Please fill in the content for the note."

	msgNoteCreated    = "Note saved successfully"
	msgNoteUpdated    = "Note updated successfully"
	msgNoteDeleted    = "Note deleted successfully"
	msgSaveFailed     = "Failed to save note"
	msgDeleteFailed   = "Failed to delete note"
	msgLoadNote       = "Failed to fetch note"
	msgLoadCategories = "Failed to fetch categories"

	msgCategoryCreated = "Category created successfully"
	msgCategoryFailed  = "Error creating category"

	msgNoFixRequired    = "No fix required!"
	msgGrammarFixed     = "Grammar corrected"
	msgSummarized       = "Note summarized"
	msgGrammarFailed    = "Failed to check grammar"
	msgSummarizeFailed  = "Failed to summarize note"
	msgUnexpectedAnswer = "Unexpected response from server"
	msgEmptyContent     = "Please write something first."

	msgDictationUnavailable = "Speech recognition is not supported on this system."
	msgDictationFailed      = "Speech recognition error"
)
