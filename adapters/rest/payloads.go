package rest

type CredentialsIn struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AttachmentIn struct {
	Name       string `json:"name"`
	MimeType   string `json:"mimeType"`
	InlineData string `json:"inlineData"`
}

type CreateTaskIn struct {
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Status      string        `json:"status,omitempty"`   // pending|completed, default pending
	Category    string        `json:"category,omitempty"` // Work|Personal|Urgent, default Work
	Attachment  *AttachmentIn `json:"attachment,omitempty"`
}

type PatchTaskIn struct {
	Title       *string       `json:"title,omitempty"`
	Description *string       `json:"description,omitempty"`
	Status      *string       `json:"status,omitempty"`
	Category    *string       `json:"category,omitempty"`
	Attachment  *AttachmentIn `json:"attachment,omitempty"`
	// RemoveAttachment clears an existing attachment.
	RemoveAttachment bool `json:"removeAttachment,omitempty"`
}

type ThemeIn struct {
	Theme string `json:"theme"`
}
