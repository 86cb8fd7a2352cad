package models

// Guide is a downloadable document template / how-to published on the
// public templates page.
type Guide struct {
	ID            int64  `json:"id"`
	Title         string `json:"title"`
	Category      string `json:"category"`
	Description   string `json:"description,omitempty"`
	FilePath      string `json:"file_path"`
	FileName      string `json:"file_name"`
	Featured      bool   `json:"featured"`
	IsActive      bool   `json:"isActive"`
	CreatedAt     string `json:"created_at"`
	ViewCount     int64  `json:"view_count"`
	DownloadCount int64  `json:"download_count"`
}

type FAQ struct {
	ID        int64  `json:"id"`
	Question  string `json:"question"`
	Answer    string `json:"answer"`
	Category  string `json:"category,omitempty"`
	IsActive  bool   `json:"isActive"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

type Slider struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Caption   string `json:"caption,omitempty"`
	ImagePath string `json:"imagePath"`
	SortOrder int    `json:"sortOrder"`
	IsActive  bool   `json:"isActive"`
}

type Contact struct {
	ID       int64  `json:"id"`
	Office   string `json:"office"`
	Address  string `json:"address,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Email    string `json:"email,omitempty"`
	IsActive bool   `json:"isActive"`
}

// MuhimuItem is one entry of the announcements / videos / downloads board.
// Kind discriminates the three boards; they share one shape.
type MuhimuItem struct {
	ID          int64  `json:"id"`
	Kind        string `json:"kind"` // announcement | video | download
	Title       string `json:"title"`
	Body        string `json:"body,omitempty"`
	MediaURL    string `json:"mediaUrl,omitempty"`
	FilePath    string `json:"filePath,omitempty"`
	IsActive    bool   `json:"isActive"`
	PublishedAt string `json:"publishedAt,omitempty"`
}

type User struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Role     string `json:"role"`
	Status   string `json:"status"`
}

type Role struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Permissions []string `json:"permissions"`
}
