package dashboard

const (
	msgCategoryCreated  = "Category created successfully"
	msgCategoryUpdated  = "Category updated successfully!"
	msgCategoryDeleted  = "Category and its notes deleted successfully"
	msgCategorySaveFail = "Error creating category"
	msgUnexpected       = "An unexpected error occurred"
	msgLoadCategories   = "Failed to load categories"
	msgLoadNotes        = "Failed to load notes"
	msgPinFailed        = "Failed to update pin status"
	msgNoteCopied       = "Note copied successfully"
	msgCopyFailed       = "Failed to copy note"
	msgDownloadFailed   = "Failed to download note"
	msgDownloaded       = "Note downloaded to "
	copySuffix          = " - Copy"
)
