package services_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/miyaru/miyaru-backend/internal/domain/entities"
	"github.com/miyaru/miyaru-backend/internal/domain/errors"
	"github.com/miyaru/miyaru-backend/internal/domain/valueobjects"
	"github.com/miyaru/miyaru-backend/internal/services"
)

var _ = Describe("UserService", func() {
	var (
		ctx     context.Context
		repo    *fakeUserRepo
		service *services.UserService
	)

	BeforeEach(func() {
		ctx = context.Background()
		repo = newFakeUserRepo()
		service = services.NewUserService(repo, nopLogger{})
	})

	Describe("CreateUser", func() {
		It("cria um perfil com os defaults", func() {
			user, err := service.CreateUser(ctx, services.CreateUserInput{
				FullName: "John Doe",
				Email:    "john@example.com",
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(user.ID).NotTo(BeEmpty())
			Expect(user.Slug).To(Equal("john-doe"))
			Expect(user.Role).To(Equal(entities.RoleUser))
			Expect(user.Status).To(Equal(entities.StatusActive))
		})

		It("rejeita quando fullName está ausente", func() {
			_, err := service.CreateUser(ctx, services.CreateUserInput{
				Email: "john@example.com",
			})

			Expect(err).To(MatchError(errors.ErrFullNameEmailRequired))
		})

		It("rejeita quando email está ausente", func() {
			_, err := service.CreateUser(ctx, services.CreateUserInput{
				FullName: "John Doe",
			})

			Expect(err).To(MatchError(errors.ErrFullNameEmailRequired))
		})

		It("rejeita email malformado", func() {
			_, err := service.CreateUser(ctx, services.CreateUserInput{
				FullName: "John Doe",
				Email:    "not-an-email",
			})

			Expect(err).To(MatchError(valueobjects.ErrInvalidEmail))
		})

		It("rejeita email já cadastrado", func() {
			_, err := service.CreateUser(ctx, services.CreateUserInput{
				FullName: "John Doe",
				Email:    "john@example.com",
			})
			Expect(err).NotTo(HaveOccurred())

			_, err = service.CreateUser(ctx, services.CreateUserInput{
				FullName: "Johnny Doe",
				Email:    "john@example.com",
			})
			Expect(err).To(MatchError(errors.ErrEmailAlreadyExists))
		})

		It("rejeita role fora da enumeração", func() {
			_, err := service.CreateUser(ctx, services.CreateUserInput{
				FullName: "John Doe",
				Email:    "john@example.com",
				Role:     "root",
			})

			Expect(err).To(MatchError(errors.ErrInvalidRole))
		})

		It("rejeita status fora da enumeração", func() {
			_, err := service.CreateUser(ctx, services.CreateUserInput{
				FullName: "John Doe",
				Email:    "john@example.com",
				Status:   "deleted",
			})

			Expect(err).To(MatchError(errors.ErrInvalidStatus))
		})

		It("rejeita trust score fora da faixa", func() {
			_, err := service.CreateUser(ctx, services.CreateUserInput{
				FullName:   "John Doe",
				Email:      "john@example.com",
				TrustScore: 101,
			})

			Expect(err).To(MatchError(errors.ErrInvalidTrustScore))
		})
	})

	Describe("UpdateUser", func() {
		var existing *entities.User

		BeforeEach(func() {
			var err error
			existing, err = service.CreateUser(ctx, services.CreateUserInput{
				FullName: "John Doe",
				Email:    "john@example.com",
			})
			Expect(err).NotTo(HaveOccurred())
		})

		It("aplica um patch parcial", func() {
			score := 88
			updated, err := service.UpdateUser(ctx, existing.ID, services.UpdateUserInput{
				TrustScore: &score,
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(updated.TrustScore).To(Equal(88))
			Expect(updated.FullName).To(Equal("John Doe"))
		})

		It("rejeita id vazio", func() {
			_, err := service.UpdateUser(ctx, "", services.UpdateUserInput{})
			Expect(err).To(MatchError(errors.ErrUserIDRequired))
		})

		It("rejeita id inexistente", func() {
			name := "Ghost"
			_, err := service.UpdateUser(ctx, "missing", services.UpdateUserInput{
				FullName: &name,
			})
			Expect(err).To(MatchError(errors.ErrUserNotFound))
		})

		It("rejeita troca para email de outro perfil", func() {
			_, err := service.CreateUser(ctx, services.CreateUserInput{
				FullName: "Jane Roe",
				Email:    "jane@example.com",
			})
			Expect(err).NotTo(HaveOccurred())

			email := "jane@example.com"
			_, err = service.UpdateUser(ctx, existing.ID, services.UpdateUserInput{
				Email: &email,
			})
			Expect(err).To(MatchError(errors.ErrEmailAlreadyExists))
		})

		It("aceita reenviar o próprio email", func() {
			email := "john@example.com"
			updated, err := service.UpdateUser(ctx, existing.ID, services.UpdateUserInput{
				Email: &email,
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Email.String()).To(Equal("john@example.com"))
		})

		It("rejeita role inválido no patch", func() {
			role := "root"
			_, err := service.UpdateUser(ctx, existing.ID, services.UpdateUserInput{
				Role: &role,
			})
			Expect(err).To(MatchError(errors.ErrInvalidRole))
		})

		It("rejeita trust score fora da faixa no patch", func() {
			score := -1
			_, err := service.UpdateUser(ctx, existing.ID, services.UpdateUserInput{
				TrustScore: &score,
			})
			Expect(err).To(MatchError(errors.ErrInvalidTrustScore))
		})
	})

	Describe("DeleteUser", func() {
		It("remove um perfil existente", func() {
			existing, err := service.CreateUser(ctx, services.CreateUserInput{
				FullName: "John Doe",
				Email:    "john@example.com",
			})
			Expect(err).NotTo(HaveOccurred())

			deleted, err := service.DeleteUser(ctx, existing.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(deleted.ID).To(Equal(existing.ID))

			found, err := repo.FindByID(ctx, existing.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(found).To(BeNil())
		})

		It("rejeita id vazio", func() {
			_, err := service.DeleteUser(ctx, "")
			Expect(err).To(MatchError(errors.ErrUserIDRequired))
		})

		It("rejeita id inexistente", func() {
			_, err := service.DeleteUser(ctx, "missing")
			Expect(err).To(MatchError(errors.ErrUserNotFound))
		})
	})

	Describe("GetUsers", func() {
		It("monta o envelope de paginação", func() {
			for _, email := range []string{"a@example.com", "b@example.com", "c@example.com"} {
				_, err := service.CreateUser(ctx, services.CreateUserInput{
					FullName: "Perfil " + email,
					Email:    email,
				})
				Expect(err).NotTo(HaveOccurred())
			}

			page, err := service.GetUsers(ctx, services.ListUsersQuery{Page: 1, Limit: 2})
			Expect(err).NotTo(HaveOccurred())
			Expect(page.Pagination.Page).To(Equal(1))
			Expect(page.Pagination.Limit).To(Equal(2))
			Expect(page.Pagination.Total).To(Equal(int64(3)))
			Expect(page.Pagination.Pages).To(Equal(2))
		})

		It("normaliza page e limit inválidos", func() {
			page, err := service.GetUsers(ctx, services.ListUsersQuery{Page: 0, Limit: -5})
			Expect(err).NotTo(HaveOccurred())
			Expect(page.Pagination.Page).To(Equal(1))
			Expect(page.Pagination.Limit).To(Equal(10))
		})
	})

	Describe("SearchUsers", func() {
		It("rejeita termo vazio", func() {
			_, err := service.SearchUsers(ctx, "", 1, 10)
			Expect(err).To(MatchError(errors.ErrSearchTermRequired))
		})

		It("delega a busca ao repositório", func() {
			_, err := service.CreateUser(ctx, services.CreateUserInput{
				FullName: "John Doe",
				Email:    "john@example.com",
			})
			Expect(err).NotTo(HaveOccurred())

			page, err := service.SearchUsers(ctx, "john", 1, 10)
			Expect(err).NotTo(HaveOccurred())
			Expect(page.Data).To(HaveLen(1))
		})
	})

	Describe("FilterUsers", func() {
		It("rejeita data malformada", func() {
			_, err := service.FilterUsers(ctx, services.FilterUsersInput{
				StartDate: "31/12/2025",
			}, 1, 10)
			Expect(err).To(MatchError(errors.ErrInvalidDate))
		})

		It("aceita data curta e RFC 3339", func() {
			for _, date := range []string{"2025-12-31", time.Now().UTC().Format(time.RFC3339)} {
				_, err := service.FilterUsers(ctx, services.FilterUsersInput{
					StartDate: date,
				}, 1, 10)
				Expect(err).NotTo(HaveOccurred())
			}
		})

		It("calcula o número de páginas arredondando para cima", func() {
			for _, email := range []string{"a@example.com", "b@example.com", "c@example.com"} {
				_, err := service.CreateUser(ctx, services.CreateUserInput{
					FullName: "Perfil " + email,
					Email:    email,
				})
				Expect(err).NotTo(HaveOccurred())
			}

			page, err := service.FilterUsers(ctx, services.FilterUsersInput{}, 1, 2)
			Expect(err).NotTo(HaveOccurred())
			Expect(page.Pagination.Pages).To(Equal(2))
		})
	})
})
