package domain

// Role names recognized by the authorization policies.
const (
	RoleAdministrator = "Administrator"
	RoleUser          = "User"
)

// Seeded role ids.
const (
	RoleIDAdministrator uint = 1
	RoleIDUser          uint = 2
)

// Organization holds the non-profit's public profile.
type Organization struct {
	EntityBase
	Name         string `gorm:"size:255;not null" json:"name"`
	Image        string `gorm:"size:255" json:"image"`
	Address      string `gorm:"size:255" json:"address"`
	Phone        string `gorm:"size:20" json:"phone"`
	Email        string `gorm:"size:320;not null" json:"email"`
	WelcomeText  string `gorm:"size:500" json:"welcome_text"`
	AboutUsText  string `gorm:"size:2000" json:"about_us_text"`
	FacebookURL  string `gorm:"size:255" json:"facebook_url"`
	InstagramURL string `gorm:"size:255" json:"instagram_url"`
	LinkedinURL  string `gorm:"size:255" json:"linkedin_url"`
}

// News is a published news article. Name and Content must each be unique.
type News struct {
	EntityBase
	Name       string `gorm:"size:255;not null" json:"name"`
	Content    string `gorm:"type:text;not null" json:"content"`
	Image      string `gorm:"size:255" json:"image"`
	CategoryID uint   `json:"category_id"`
}

// Activity is a program or workshop run by the organization.
type Activity struct {
	EntityBase
	Name    string `gorm:"size:255;not null" json:"name"`
	Content string `gorm:"type:text;not null" json:"content"`
	Image   string `gorm:"size:255" json:"image"`
}

// Category groups news articles.
type Category struct {
	EntityBase
	Name        string `gorm:"size:255;not null" json:"name"`
	Description string `gorm:"size:255" json:"description"`
	Image       string `gorm:"size:255" json:"image"`
}

// Comment is a user remark on a news article. UserID is the owning user,
// set once at creation and never changed afterward; the ownership policy
// compares against it.
type Comment struct {
	EntityBase
	NewsID uint   `json:"news_id"`
	UserID uint   `json:"user_id"`
	Body   string `gorm:"type:text;not null" json:"body"`
}

// Member is a staff or board member shown on the site.
type Member struct {
	EntityBase
	Name         string `gorm:"size:255;not null" json:"name"`
	Image        string `gorm:"size:255" json:"image"`
	FacebookURL  string `gorm:"size:255" json:"facebook_url"`
	InstagramURL string `gorm:"size:255" json:"instagram_url"`
	LinkedinURL  string `gorm:"size:255" json:"linkedin_url"`
	Description  string `gorm:"size:255" json:"description"`
}

// Testimonial is a quote from a beneficiary or collaborator.
type Testimonial struct {
	EntityBase
	Name    string `gorm:"size:255;not null" json:"name"`
	Content string `gorm:"type:text;not null" json:"content"`
	Image   string `gorm:"size:255" json:"image"`
}

// Slide is a carousel entry on the organization's landing page.
// Order is unique within an organization.
type Slide struct {
	EntityBase
	ImageURL       string `gorm:"size:255" json:"image_url"`
	Text           string `gorm:"size:2000" json:"text"`
	Order          int    `gorm:"column:sort_order" json:"order"`
	OrganizationID uint   `json:"organization_id"`
}

// Contact is a message submitted through the public contact form.
type Contact struct {
	EntityBase
	Name    string `gorm:"size:255" json:"name"`
	Phone   string `gorm:"size:20" json:"phone"`
	Email   string `gorm:"size:320" json:"email"`
	Message string `gorm:"size:2000" json:"message"`
}

// User is a registered account. Password holds a bcrypt hash, never plaintext.
type User struct {
	EntityBase
	FirstName string `gorm:"size:255;not null" json:"first_name"`
	LastName  string `gorm:"size:255;not null" json:"last_name"`
	Email     string `gorm:"size:320;uniqueIndex;not null" json:"email"`
	Password  string `gorm:"size:255;not null" json:"-"`
	Photo     string `gorm:"size:255" json:"photo"`
	RoleID    uint   `json:"role_id"`
}

// Role is a named access level.
type Role struct {
	EntityBase
	Name        string `gorm:"size:255;not null" json:"name"`
	Description string `gorm:"size:255" json:"description"`
}
