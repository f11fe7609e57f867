package services_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/miyaru/miyaru-backend/internal/domain/entities"
	"github.com/miyaru/miyaru-backend/internal/domain/errors"
	"github.com/miyaru/miyaru-backend/internal/services"
)

var _ = Describe("ProfileService", func() {
	var (
		ctx      context.Context
		repo     *fakeUserRepo
		newsRepo *fakeNewsRepo
		cache    *fakeCache
		service  *services.ProfileService
	)

	BeforeEach(func() {
		ctx = context.Background()
		repo = newFakeUserRepo()
		newsRepo = &fakeNewsRepo{}
		cache = newFakeCache()
		service = services.NewProfileService(repo, newsRepo, cache, time.Minute, nopLogger{})
	})

	Describe("GetProfileBySlug", func() {
		var created *entities.User

		BeforeEach(func() {
			var err error
			created, err = repo.Create(ctx, &entities.User{
				FullName: "John Doe",
				Email:    mustVOEmail("john@example.com"),
				Details: []entities.Detail{
					{Title: "Ngân hàng", Content: "Vietcombank"},
				},
			})
			Expect(err).NotTo(HaveOccurred())
		})

		It("retorna o perfil pela chave de URL", func() {
			user, err := service.GetProfileBySlug(ctx, "john-doe")
			Expect(err).NotTo(HaveOccurred())
			Expect(user.ID).To(Equal(created.ID))
			Expect(user.Details).To(HaveLen(1))
		})

		It("retorna not found para slug desconhecido", func() {
			_, err := service.GetProfileBySlug(ctx, "ghost")
			Expect(err).To(MatchError(errors.ErrUserNotFound))
		})

		It("popula o cache na primeira leitura e o usa na segunda", func() {
			_, err := service.GetProfileBySlug(ctx, "john-doe")
			Expect(err).NotTo(HaveOccurred())
			Expect(cache.sets).To(Equal(1))

			user, err := service.GetProfileBySlug(ctx, "john-doe")
			Expect(err).NotTo(HaveOccurred())
			Expect(user.ID).To(Equal(created.ID))
			Expect(cache.hits).To(Equal(1))
			Expect(cache.sets).To(Equal(1))
		})
	})

	Describe("GetDiscoverNews", func() {
		BeforeEach(func() {
			now := time.Now().UTC()
			_, err := newsRepo.Create(ctx, &entities.News{
				ID:          "news-1",
				Title:       "Primeira notícia",
				Slug:        "primeira-noticia",
				Status:      entities.NewsPublished,
				PublishedAt: &now,
			})
			Expect(err).NotTo(HaveOccurred())
		})

		It("retorna o feed publicado", func() {
			news, err := service.GetDiscoverNews(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(news).To(HaveLen(1))
			Expect(news[0].Slug).To(Equal("primeira-noticia"))
		})

		It("usa o cache na segunda leitura", func() {
			_, err := service.GetDiscoverNews(ctx)
			Expect(err).NotTo(HaveOccurred())

			newsRepo.listErr = context.DeadlineExceeded

			news, err := service.GetDiscoverNews(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(news).To(HaveLen(1))
		})
	})
})
