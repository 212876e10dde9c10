package models

// ServiceCategory groups catalog entries on the public services page.
type ServiceCategory string

const (
	CategoryConsultancy ServiceCategory = "Consultancy"
	CategoryDesign      ServiceCategory = "Design"
	CategoryDevelopment ServiceCategory = "Development"
	CategoryMarketing   ServiceCategory = "Marketing"
	CategorySoftware    ServiceCategory = "Software"
)

type TaskStatus string

const (
	TaskPending    TaskStatus = "Pending"
	TaskInProgress TaskStatus = "In Progress"
	TaskCompleted  TaskStatus = "Completed"
	TaskOnHold     TaskStatus = "On Hold"
)

type TaskPriority string

const (
	PriorityLow      TaskPriority = "Low"
	PriorityMedium   TaskPriority = "Medium"
	PriorityHigh     TaskPriority = "High"
	PriorityCritical TaskPriority = "Critical"
)

// TaskCategory is a closed set of admin task buckets.
type TaskCategory string

const (
	TaskInquiryHandling TaskCategory = "Inquiry Handling"
	TaskPostManagement  TaskCategory = "Post Management"
	TaskWebsiteAdmin    TaskCategory = "Website Admin"
	TaskStrategy        TaskCategory = "Strategy"
	TaskBranding        TaskCategory = "Branding"
	TaskSourcing        TaskCategory = "Sourcing"
)

type TeamRole string

const (
	RoleDirector TeamRole = "Director"
	RoleMember   TeamRole = "Member"
	RoleAdvisor  TeamRole = "Advisor"
)

type PricingTier struct {
	Name     string   `json:"name"`
	Price    string   `json:"price"`
	Features []string `json:"features"`
}

// Service is a catalog entry. Slug is used for URL lookup; uniqueness is
// not enforced by the store and lookup resolves to the first match.
type Service struct {
	ID              string          `json:"id"`
	Slug            string          `json:"slug"`
	Title           string          `json:"title"`
	Icon            string          `json:"icon"`
	Description     string          `json:"description"`
	FullDescription string          `json:"fullDescription"`
	Category        ServiceCategory `json:"category"`
	IsComingSoon    bool            `json:"isComingSoon"`
	Pricing         []PricingTier   `json:"pricing"`
	Benefits        []string        `json:"benefits"`
	Process         []string        `json:"process"`
}

// BlogPost content is plain text with an inline [label](url) link
// micro-syntax rendered at read time.
type BlogPost struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Excerpt  string `json:"excerpt"`
	Content  string `json:"content"`
	Category string `json:"category"`
	Author   string `json:"author"`
	Date     string `json:"date"`
	Image    string `json:"image"`
}

type TeamMember struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Position  string   `json:"position"`
	Bio       string   `json:"bio"`
	Image     string   `json:"image"`
	Email     string   `json:"email"`
	Linkedin  string   `json:"linkedin"`
	Whatsapp  string   `json:"whatsapp,omitempty"`
	Twitter   string   `json:"twitter,omitempty"`
	Facebook  string   `json:"facebook,omitempty"`
	Instagram string   `json:"instagram,omitempty"`
	Tiktok    string   `json:"tiktok,omitempty"`
	Role      TeamRole `json:"role"`
}

// Task.AssignedToID is a weak reference to TeamMember.ID; deleting a
// member does not cascade.
type Task struct {
	ID           string       `json:"id"`
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	AssignedToID string       `json:"assignedToId"`
	Category     TaskCategory `json:"category"`
	Status       TaskStatus   `json:"status"`
	Priority     TaskPriority `json:"priority"`
	DueDate      string       `json:"dueDate"`
	CreatedAt    string       `json:"createdAt"`
}

type Testimonial struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Company    string `json:"company"`
	Content    string `json:"content"`
	Image      string `json:"image"`
	IsApproved bool   `json:"isApproved"`
}

type ContactSubmission struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Service string `json:"service"`
	Message string `json:"message"`
	Date    string `json:"date"`
}

type SEOConfig struct {
	MetaTitle       string `json:"metaTitle"`
	MetaDescription string `json:"metaDescription"`
	Keywords        string `json:"keywords"`
}

type SiteConfig struct {
	SiteName        string            `json:"siteName"`
	Tagline         string            `json:"tagline"`
	PrimaryColor    string            `json:"primaryColor"`
	SecondaryColor  string            `json:"secondaryColor"`
	LogoText        string            `json:"logoText"`
	LogoImage       string            `json:"logoImage"`
	FaviconImage    string            `json:"faviconImage"`
	FooterLogoImage string            `json:"footerLogoImage"`
	ContactEmail    string            `json:"contactEmail"`
	ContactPhone    string            `json:"contactPhone"`
	Address         string            `json:"address"`
	MaintenanceMode bool              `json:"maintenanceMode"`
	SocialLinks     map[string]string `json:"socialLinks"`
	SEO             SEOConfig         `json:"seo"`
}

// AppState is the root state object. The persisted blob is this struct
// serialized verbatim, plaintext admin password included.
type AppState struct {
	AdminPassword   string              `json:"adminPassword"`
	Config          SiteConfig          `json:"config"`
	Services        []Service           `json:"services"`
	Posts           []BlogPost          `json:"posts"`
	Team            []TeamMember        `json:"team"`
	Tasks           []Task              `json:"tasks"`
	Testimonials    []Testimonial       `json:"testimonials"`
	Submissions     []ContactSubmission `json:"submissions"`
	IsAuthenticated bool                `json:"isAuthenticated"`
	IsDarkMode      bool                `json:"isDarkMode"`
}

// Clone returns a copy that shares no slice or map headers with the
// receiver. Record structs are copied by value; their inner slices are
// never mutated in place by the store (collections are bulk-replaced),
// so a top-level copy is a safe snapshot.
func (s AppState) Clone() AppState {
	out := s
	out.Services = append([]Service(nil), s.Services...)
	out.Posts = append([]BlogPost(nil), s.Posts...)
	out.Team = append([]TeamMember(nil), s.Team...)
	out.Tasks = append([]Task(nil), s.Tasks...)
	out.Testimonials = append([]Testimonial(nil), s.Testimonials...)
	out.Submissions = append([]ContactSubmission(nil), s.Submissions...)
	if s.Config.SocialLinks != nil {
		out.Config.SocialLinks = make(map[string]string, len(s.Config.SocialLinks))
		for k, v := range s.Config.SocialLinks {
			out.Config.SocialLinks[k] = v
		}
	}
	return out
}
