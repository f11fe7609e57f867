package dto

import (
	"encoding/json"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/miyaru/miyaru-backend/internal/domain/entities"
	"github.com/miyaru/miyaru-backend/internal/services"
)

func init() {
	// Moeda do fundo de seguro: enumeração fechada validada na borda
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("insurancecurrency", func(fl validator.FieldLevel) bool {
			s := fl.Field().String()
			return s == "" || s == entities.CurrencyVND || s == entities.CurrencyUSD
		})
	}
}

// AvatarPayload aceita os dois formatos que convivem na base: a string
// legada (só a URL) e o objeto {url, alt}. A união é decidida aqui, na
// ingestão; daqui para dentro só existe a forma canônica.
type AvatarPayload struct {
	URL string `json:"url"`
	Alt string `json:"alt"`
}

func (a *AvatarPayload) UnmarshalJSON(data []byte) error {
	var legacy string
	if err := json.Unmarshal(data, &legacy); err == nil {
		a.URL = legacy
		a.Alt = ""
		return nil
	}

	type plain AvatarPayload
	var obj plain
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	*a = AvatarPayload(obj)
	return nil
}

func (a AvatarPayload) toEntity() entities.Avatar {
	return entities.Avatar{URL: a.URL, Alt: a.Alt}
}

// ContactPayload agrupa os canais de contato opcionais
type ContactPayload struct {
	FacebookPrimary   string `json:"facebookPrimary"`
	FacebookSecondary string `json:"facebookSecondary"`
	Zalo              string `json:"zalo"`
	Website           string `json:"website"`
}

func (c ContactPayload) toEntity() entities.Contact {
	return entities.Contact(c)
}

// InsurancePayload é o fundo de seguro
type InsurancePayload struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency" binding:"omitempty,insurancecurrency"`
}

func (i InsurancePayload) toEntity() entities.Insurance {
	return entities.Insurance{Amount: i.Amount, Currency: i.Currency}
}

// DetailPayload é um par (título, conteúdo) de dados bancários
type DetailPayload struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// SEOPayload são os metadados de apresentação
type SEOPayload struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords"`
}

// CreateUserRequest representa a requisição para criar um perfil.
// Obrigatoriedade de fullName/email e as enumerações de role/status
// são responsabilidade do serviço, que produz as mensagens legadas.
type CreateUserRequest struct {
	FullName      string           `json:"fullName"`
	Email         string           `json:"email"`
	EmailVerified bool             `json:"emailVerified"`
	Role          string           `json:"role"`
	Status        string           `json:"status"`
	TrustScore    int              `json:"trustScore"`
	Avatar        AvatarPayload    `json:"avatar"`
	Contact       ContactPayload   `json:"contact"`
	Insurance     InsurancePayload `json:"insurance"`
	Details       []DetailPayload  `json:"details"`
	SEO           SEOPayload       `json:"seo"`
	JoinedAt      *time.Time       `json:"joinedAt"`
}

// ToInput converte a requisição para o input do serviço
func (r CreateUserRequest) ToInput() services.CreateUserInput {
	return services.CreateUserInput{
		FullName:      r.FullName,
		Email:         r.Email,
		EmailVerified: r.EmailVerified,
		Role:          r.Role,
		Status:        r.Status,
		TrustScore:    r.TrustScore,
		Avatar:        r.Avatar.toEntity(),
		Contact:       r.Contact.toEntity(),
		Insurance:     r.Insurance.toEntity(),
		Details:       toDetailEntities(r.Details),
		SEO: entities.SEO{
			Title:       r.SEO.Title,
			Description: r.SEO.Description,
			Keywords:    r.SEO.Keywords,
		},
		JoinedAt: r.JoinedAt,
	}
}

// UpdateUserRequest é o patch parcial; campos ausentes ficam nil e não
// são aplicados
type UpdateUserRequest struct {
	FullName      *string           `json:"fullName"`
	Email         *string           `json:"email"`
	EmailVerified *bool             `json:"emailVerified"`
	Role          *string           `json:"role"`
	Status        *string           `json:"status"`
	TrustScore    *int              `json:"trustScore"`
	Avatar        *AvatarPayload    `json:"avatar"`
	Contact       *ContactPayload   `json:"contact"`
	Insurance     *InsurancePayload `json:"insurance"`
	Details       *[]DetailPayload  `json:"details"`
	SEO           *SEOPayload       `json:"seo"`
}

// ToInput converte o patch para o input do serviço
func (r UpdateUserRequest) ToInput() services.UpdateUserInput {
	input := services.UpdateUserInput{
		FullName:      r.FullName,
		Email:         r.Email,
		EmailVerified: r.EmailVerified,
		Role:          r.Role,
		Status:        r.Status,
		TrustScore:    r.TrustScore,
	}

	if r.Avatar != nil {
		avatar := r.Avatar.toEntity()
		input.Avatar = &avatar
	}
	if r.Contact != nil {
		contact := r.Contact.toEntity()
		input.Contact = &contact
	}
	if r.Insurance != nil {
		insurance := r.Insurance.toEntity()
		input.Insurance = &insurance
	}
	if r.Details != nil {
		details := toDetailEntities(*r.Details)
		input.Details = &details
	}
	if r.SEO != nil {
		input.SEO = &entities.SEO{
			Title:       r.SEO.Title,
			Description: r.SEO.Description,
			Keywords:    r.SEO.Keywords,
		}
	}

	return input
}

// FilterUsersRequest é o corpo do endpoint de filtro avançado
type FilterUsersRequest struct {
	Filters struct {
		Role          string `json:"role"`
		Status        string `json:"status"`
		MinTrustScore *int   `json:"minTrustScore"`
		MaxTrustScore *int   `json:"maxTrustScore"`
		StartDate     string `json:"startDate"`
		EndDate       string `json:"endDate"`
	} `json:"filters"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// ToInput converte os filtros para o input do serviço
func (r FilterUsersRequest) ToInput() services.FilterUsersInput {
	return services.FilterUsersInput{
		Role:          r.Filters.Role,
		Status:        r.Filters.Status,
		MinTrustScore: r.Filters.MinTrustScore,
		MaxTrustScore: r.Filters.MaxTrustScore,
		StartDate:     r.Filters.StartDate,
		EndDate:       r.Filters.EndDate,
	}
}

// UserResponse representa a resposta de um perfil; os nomes de campo
// seguem o contrato camelCase do frontend legado
type UserResponse struct {
	ID            string           `json:"id"`
	FullName      string           `json:"fullName"`
	Slug          string           `json:"slug"`
	Email         string           `json:"email"`
	EmailVerified bool             `json:"emailVerified"`
	Role          string           `json:"role"`
	Status        string           `json:"status"`
	TrustScore    int              `json:"trustScore"`
	Avatar        AvatarPayload    `json:"avatar"`
	Contact       ContactPayload   `json:"contact"`
	Insurance     InsurancePayload `json:"insurance"`
	Details       []DetailPayload  `json:"details"`
	SEO           SEOPayload       `json:"seo"`
	JoinedAt      time.Time        `json:"joinedAt"`
	LastLoginAt   *time.Time       `json:"lastLoginAt,omitempty"`
	CreatedAt     time.Time        `json:"createdAt"`
	UpdatedAt     time.Time        `json:"updatedAt"`
}

// UserPageResponse é a página de perfis com o envelope de paginação
type UserPageResponse struct {
	Data       []UserResponse      `json:"data"`
	Pagination services.Pagination `json:"pagination"`
}

// ToUserResponse converte uma entidade User para UserResponse
func ToUserResponse(user *entities.User) UserResponse {
	details := make([]DetailPayload, len(user.Details))
	for i, d := range user.Details {
		details[i] = DetailPayload{Title: d.Title, Content: d.Content}
	}

	return UserResponse{
		ID:            user.ID,
		FullName:      user.FullName,
		Slug:          user.Slug,
		Email:         user.Email.String(),
		EmailVerified: user.EmailVerified,
		Role:          string(user.Role),
		Status:        string(user.Status),
		TrustScore:    user.TrustScore,
		Avatar:        AvatarPayload{URL: user.Avatar.URL, Alt: user.Avatar.Alt},
		Contact:       ContactPayload(user.Contact),
		Insurance:     InsurancePayload{Amount: user.Insurance.Amount, Currency: user.Insurance.Currency},
		Details:       details,
		SEO: SEOPayload{
			Title:       user.SEO.Title,
			Description: user.SEO.Description,
			Keywords:    user.SEO.Keywords,
		},
		JoinedAt:    user.JoinedAt,
		LastLoginAt: user.LastLoginAt,
		CreatedAt:   user.CreatedAt,
		UpdatedAt:   user.UpdatedAt,
	}
}

// ToUserPageResponse converte uma página de perfis
func ToUserPageResponse(page *services.UserPage) UserPageResponse {
	data := make([]UserResponse, len(page.Data))
	for i, user := range page.Data {
		data[i] = ToUserResponse(user)
	}
	return UserPageResponse{
		Data:       data,
		Pagination: page.Pagination,
	}
}

func toDetailEntities(details []DetailPayload) []entities.Detail {
	if len(details) == 0 {
		return nil
	}
	out := make([]entities.Detail, len(details))
	for i, d := range details {
		out[i] = entities.Detail{Title: d.Title, Content: d.Content}
	}
	return out
}
