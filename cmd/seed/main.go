package main

import (
	"context"
	"os"
	"time"

	"github.com/miyaru/miyaru-backend/internal/domain/entities"
	"github.com/miyaru/miyaru-backend/internal/domain/ports"
	"github.com/miyaru/miyaru-backend/internal/domain/repositories"
	"github.com/miyaru/miyaru-backend/internal/domain/valueobjects"
	"github.com/miyaru/miyaru-backend/internal/infrastructure/config"
	"github.com/miyaru/miyaru-backend/internal/infrastructure/logging"
	"github.com/miyaru/miyaru-backend/internal/infrastructure/persistence/postgres"
)

// seedUser descreve um perfil de exemplo inserido pelo seed
type seedUser struct {
	fullName   string
	email      string
	role       entities.Role
	status     entities.Status
	trustScore int
	insurance  entities.Insurance
	contact    entities.Contact
	details    []entities.Detail
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := logging.NewSlogLogger(cfg.Logging.Level)

	db, err := postgres.NewDatabaseConnection(&cfg.Database, log)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	if err := postgres.Migrate(db); err != nil {
		log.Error("failed to migrate database", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	userRepo := postgres.NewUserRepository(db)
	newsRepo := postgres.NewNewsRepository(db)

	seedUsers(ctx, userRepo, log)
	seedNews(ctx, userRepo, newsRepo, log)

	log.Info("seed finished")
}

// seedUsers insere os perfis de exemplo; perfis já existentes (por
// email) são mantidos intactos
func seedUsers(ctx context.Context, repo repositories.UserRepository, log ports.Logger) {
	for _, s := range sampleUsers() {
		existing, err := repo.FindByEmail(ctx, s.email)
		if err != nil {
			log.Error("failed to check existing user", "email", s.email, "error", err)
			continue
		}
		if existing != nil {
			log.Info("user already seeded", "email", s.email)
			continue
		}

		email, err := valueobjects.NewEmail(s.email)
		if err != nil {
			log.Error("invalid seed email", "email", s.email, "error", err)
			continue
		}

		user := &entities.User{
			FullName:      s.fullName,
			Email:         email,
			EmailVerified: true,
			Role:          s.role,
			Status:        s.status,
			TrustScore:    s.trustScore,
			Insurance:     s.insurance,
			Contact:       s.contact,
			Details:       s.details,
			SEO: entities.SEO{
				Title:       s.fullName,
				Description: "Perfil verificado de " + s.fullName,
			},
		}

		created, err := repo.Create(ctx, user)
		if err != nil {
			log.Error("failed to seed user", "email", s.email, "error", err)
			continue
		}

		log.Info("user seeded", "email", created.Email.String(), "slug", created.Slug)
	}
}

// seedNews insere notícias publicadas de exemplo, atribuídas ao
// primeiro administrador encontrado
func seedNews(ctx context.Context, userRepo repositories.UserRepository, newsRepo repositories.NewsRepository, log ports.Logger) {
	admin, err := userRepo.FindByEmail(ctx, "superadmin@example.com")
	if err != nil || admin == nil {
		log.Warn("no admin available to author seed news")
		return
	}

	for _, n := range sampleNews(admin.ID) {
		existing, err := newsRepo.FindBySlug(ctx, n.Slug)
		if err != nil {
			log.Error("failed to check existing news", "slug", n.Slug, "error", err)
			continue
		}
		if existing != nil {
			log.Info("news already seeded", "slug", n.Slug)
			continue
		}

		if _, err := newsRepo.Create(ctx, n); err != nil {
			log.Error("failed to seed news", "slug", n.Slug, "error", err)
			continue
		}

		log.Info("news seeded", "slug", n.Slug)
	}
}

func sampleUsers() []seedUser {
	bank := func(holder, bankName, account string) []entities.Detail {
		return []entities.Detail{
			{Title: "Chủ tài khoản", Content: holder},
			{Title: "Ngân hàng", Content: bankName},
			{Title: "Số tài khoản", Content: account},
		}
	}

	return []seedUser{
		{
			fullName:   "Super Admin",
			email:      "superadmin@example.com",
			role:       entities.RoleSuperAdmin,
			status:     entities.StatusActive,
			trustScore: 100,
			insurance:  entities.Insurance{Amount: 100_000_000, Currency: entities.CurrencyVND},
		},
		{
			fullName:   "Admin User",
			email:      "admin@example.com",
			role:       entities.RoleAdmin,
			status:     entities.StatusActive,
			trustScore: 90,
			insurance:  entities.Insurance{Amount: 50_000_000, Currency: entities.CurrencyVND},
		},
		{
			fullName:   "Nguyễn Văn An",
			email:      "nguyenvanan@example.com",
			role:       entities.RoleUser,
			status:     entities.StatusActive,
			trustScore: 85,
			insurance:  entities.Insurance{Amount: 20_000_000, Currency: entities.CurrencyVND},
			contact: entities.Contact{
				FacebookPrimary: "https://facebook.com/nguyenvanan",
				Zalo:            "0901234567",
			},
			details: bank("NGUYEN VAN AN", "Vietcombank", "0071000123456"),
		},
		{
			fullName:   "Trần Thị Bình",
			email:      "tranthibinh@example.com",
			role:       entities.RoleUser,
			status:     entities.StatusActive,
			trustScore: 78,
			insurance:  entities.Insurance{Amount: 15_000_000, Currency: entities.CurrencyVND},
			contact: entities.Contact{
				FacebookPrimary: "https://facebook.com/tranthibinh",
				Website:         "https://tranthibinh.example.com",
			},
			details: bank("TRAN THI BINH", "Techcombank", "19031234567890"),
		},
		{
			fullName:   "Lê Hoàng Cường",
			email:      "lehoangcuong@example.com",
			role:       entities.RoleUser,
			status:     entities.StatusInactive,
			trustScore: 60,
			insurance:  entities.Insurance{Amount: 10_000_000, Currency: entities.CurrencyVND},
			details:    bank("LE HOANG CUONG", "ACB", "876543210"),
		},
		{
			fullName:   "Phạm Minh Đức",
			email:      "phamminhduc@example.com",
			role:       entities.RoleUser,
			status:     entities.StatusBanned,
			trustScore: 10,
		},
	}
}

func sampleNews(authorID string) []*entities.News {
	now := time.Now().UTC()
	older := now.Add(-48 * time.Hour)

	return []*entities.News{
		{
			Title:       "Diretório de confiança entra no ar",
			Slug:        "diretorio-de-confianca-entra-no-ar",
			Summary:     "A primeira versão pública do diretório já está disponível.",
			Content:     "A comunidade agora pode consultar perfis verificados, fundo de seguro e canais de contato de cada membro.",
			Status:      entities.NewsPublished,
			AuthorID:    authorID,
			PublishedAt: &older,
		},
		{
			Title:       "Como funciona o trust score",
			Slug:        "como-funciona-o-trust-score",
			Summary:     "Entenda a escala de 0 a 100 usada nos perfis.",
			Content:     "O trust score resume o histórico de cada membro em uma escala de 0 a 100, revisada pela administração do diretório.",
			Status:      entities.NewsPublished,
			AuthorID:    authorID,
			PublishedAt: &now,
		},
	}
}
