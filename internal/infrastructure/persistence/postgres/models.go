package postgres

// UserModel é o model GORM para perfis do diretório
type UserModel struct {
	ID            string `gorm:"type:varchar(36);primaryKey"`
	FullName      string `gorm:"type:varchar(500);not null"`
	Slug          string `gorm:"type:varchar(500);uniqueIndex;not null"`
	Email         string `gorm:"type:varchar(255);uniqueIndex;not null"`
	EmailVerified bool   `gorm:"not null;default:false"`
	Role          string `gorm:"type:varchar(50);not null;index"`
	Status        string `gorm:"type:varchar(50);not null;index"`
	TrustScore    int    `gorm:"not null;default:0;index"`

	AvatarURL string `gorm:"type:varchar(1000)"`
	AvatarAlt string `gorm:"type:varchar(500)"`

	ContactFacebookPrimary   string `gorm:"type:varchar(500)"`
	ContactFacebookSecondary string `gorm:"type:varchar(500)"`
	ContactZalo              string `gorm:"type:varchar(100)"`
	ContactWebsite           string `gorm:"type:varchar(500)"`

	InsuranceAmount   int64  `gorm:"not null;default:0"`
	InsuranceCurrency string `gorm:"type:varchar(10);not null;default:VND"`

	Details []DetailModel `gorm:"serializer:json;type:text"`

	SeoTitle       string   `gorm:"type:varchar(500)"`
	SeoDescription string   `gorm:"type:varchar(2000)"`
	SeoKeywords    []string `gorm:"serializer:json;type:text"`

	AuthProvider          string `gorm:"type:varchar(50);index:idx_users_provider_account"`
	AuthProviderAccountID string `gorm:"type:varchar(255);index:idx_users_provider_account"`

	JoinedAt    int64  `gorm:"not null;index"`
	LastLoginAt *int64 `gorm:""`
	CreatedAt   int64  `gorm:"autoCreateTime;index"`
	UpdatedAt   int64  `gorm:"autoUpdateTime"`
}

// DetailModel é o par (título, conteúdo) serializado como JSON
type DetailModel struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (UserModel) TableName() string {
	return "users"
}

// NewsModel é o model GORM para notícias do feed público
type NewsModel struct {
	ID          string `gorm:"type:varchar(36);primaryKey"`
	Title       string `gorm:"type:varchar(500);not null"`
	Slug        string `gorm:"type:varchar(500);uniqueIndex;not null"`
	Summary     string `gorm:"type:varchar(2000)"`
	Content     string `gorm:"type:text"`
	Status      string `gorm:"type:varchar(50);not null;index"`
	AuthorID    string `gorm:"type:varchar(36);index"`
	PublishedAt *int64 `gorm:"index"`
	CreatedAt   int64  `gorm:"autoCreateTime"`
	UpdatedAt   int64  `gorm:"autoUpdateTime"`
}

func (NewsModel) TableName() string {
	return "news"
}
