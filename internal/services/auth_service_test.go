package services_test

import (
	"context"
	stderrors "errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/miyaru/miyaru-backend/internal/domain/entities"
	"github.com/miyaru/miyaru-backend/internal/domain/errors"
	"github.com/miyaru/miyaru-backend/internal/domain/ports"
	"github.com/miyaru/miyaru-backend/internal/domain/repositories"
	"github.com/miyaru/miyaru-backend/internal/infrastructure/auth"
	"github.com/miyaru/miyaru-backend/internal/services"
)

var _ = Describe("AuthService", func() {
	var (
		ctx      context.Context
		repo     *fakeUserRepo
		verifier *fakeVerifier
		tokens   *auth.TokenService
		service  *services.AuthService
	)

	BeforeEach(func() {
		ctx = context.Background()
		repo = newFakeUserRepo()
		verifier = &fakeVerifier{
			identity: &ports.GoogleIdentity{
				Subject:       "google-sub-1",
				Email:         "maria.silva@example.com",
				EmailVerified: true,
				Name:          "Maria Silva",
				Picture:       "https://lh3.example.com/maria.jpg",
			},
		}
		tokens = auth.NewTokenService("test-secret", time.Hour)
		service = services.NewAuthService(repo, verifier, tokens, nopLogger{})
	})

	Describe("LoginWithGoogle", func() {
		It("rejeita idToken vazio", func() {
			_, err := service.LoginWithGoogle(ctx, "")
			Expect(err).To(MatchError(errors.ErrIDTokenRequired))
		})

		It("rejeita token recusado pelo verificador", func() {
			verifier.err = stderrors.New("token expired")

			_, err := service.LoginWithGoogle(ctx, "bad-token")
			Expect(err).To(MatchError(errors.ErrInvalidToken))
		})

		It("registra o perfil no primeiro login", func() {
			result, err := service.LoginWithGoogle(ctx, "good-token")
			Expect(err).NotTo(HaveOccurred())

			user := result.User
			Expect(user.FullName).To(Equal("Maria Silva"))
			Expect(user.Email.String()).To(Equal("maria.silva@example.com"))
			Expect(user.EmailVerified).To(BeTrue())
			Expect(user.Role).To(Equal(entities.RoleUser))
			Expect(user.Auth.Provider).To(Equal(entities.AuthProviderGoogle))
			Expect(user.Auth.ProviderAccountID).To(Equal("google-sub-1"))
			Expect(user.Avatar.URL).To(Equal("https://lh3.example.com/maria.jpg"))
		})

		It("semeia o slug com a parte local do email", func() {
			result, err := service.LoginWithGoogle(ctx, "good-token")
			Expect(err).NotTo(HaveOccurred())
			Expect(result.User.Slug).To(Equal("mariasilva"))
		})

		It("resolve colisão de slug no registro", func() {
			_, err := service.LoginWithGoogle(ctx, "good-token")
			Expect(err).NotTo(HaveOccurred())

			verifier.identity = &ports.GoogleIdentity{
				Subject: "google-sub-2",
				Email:   "maria.silva@another.example.com",
				Name:    "Outra Maria",
			}

			result, err := service.LoginWithGoogle(ctx, "good-token")
			Expect(err).NotTo(HaveOccurred())
			Expect(result.User.Slug).To(Equal("mariasilva-1"))
		})

		It("reusa o perfil nos logins seguintes", func() {
			first, err := service.LoginWithGoogle(ctx, "good-token")
			Expect(err).NotTo(HaveOccurred())

			second, err := service.LoginWithGoogle(ctx, "good-token")
			Expect(err).NotTo(HaveOccurred())
			Expect(second.User.ID).To(Equal(first.User.ID))

			_, total, err := repo.List(ctx, repositories.ListFilters{})
			Expect(err).NotTo(HaveOccurred())
			Expect(total).To(Equal(int64(1)))
		})

		It("marca o último login", func() {
			result, err := service.LoginWithGoogle(ctx, "good-token")
			Expect(err).NotTo(HaveOccurred())
			Expect(result.User.LastLoginAt).NotTo(BeNil())
		})

		It("emite um token verificável com uid e role do perfil", func() {
			result, err := service.LoginWithGoogle(ctx, "good-token")
			Expect(err).NotTo(HaveOccurred())

			claims, err := tokens.Verify(result.Token)
			Expect(err).NotTo(HaveOccurred())
			Expect(claims.UID).To(Equal(result.User.ID))
			Expect(claims.Role).To(Equal(entities.RoleUser))
		})
	})
})
