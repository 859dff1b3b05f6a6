package container

import (
	"context"
	"fmt"
	"time"

	"bookcms-backend/internal/config"
	infraCache "bookcms-backend/internal/infrastructure/cache"
	"bookcms-backend/internal/infrastructure/database"
	"bookcms-backend/internal/infrastructure/email"
	"bookcms-backend/pkg/cache"
	"bookcms-backend/pkg/logger"

	authorHandler "bookcms-backend/internal/domains/author/handler"
	authorRepo "bookcms-backend/internal/domains/author/repository"
	authorService "bookcms-backend/internal/domains/author/service"
	bookHandler "bookcms-backend/internal/domains/book/handler"
	bookRepo "bookcms-backend/internal/domains/book/repository"
	bookService "bookcms-backend/internal/domains/book/service"
	categoryHandler "bookcms-backend/internal/domains/category/handler"
	categoryRepo "bookcms-backend/internal/domains/category/repository"
	categoryService "bookcms-backend/internal/domains/category/service"
	contactHandler "bookcms-backend/internal/domains/contact/handler"
	contactRepo "bookcms-backend/internal/domains/contact/repository"
	contactService "bookcms-backend/internal/domains/contact/service"
	homeHandler "bookcms-backend/internal/domains/home/handler"
	newsHandler "bookcms-backend/internal/domains/news/handler"
	newsRepo "bookcms-backend/internal/domains/news/repository"
	newsService "bookcms-backend/internal/domains/news/service"
)

// Container is the root of the dependency graph. Everything is a
// singleton wired at startup: config, infrastructure, repositories,
// services, handlers, in that order.
type Container struct {
	Config *config.Config
	DB     *database.PostgresDB
	Cache  cache.Cache
	Email  email.EmailService

	CategoryRepo categoryRepo.RepositoryInterface
	AuthorRepo   authorRepo.RepositoryInterface
	BookRepo     bookRepo.RepositoryInterface
	NewsRepo     newsRepo.RepositoryInterface
	ContactRepo  contactRepo.RepositoryInterface

	CategoryService categoryService.ServiceInterface
	AuthorService   authorService.ServiceInterface
	BookService     bookService.ServiceInterface
	NewsService     newsService.ServiceInterface
	ContactService  contactService.ServiceInterface

	CategoryHandler *categoryHandler.CategoryHandler
	AuthorHandler   *authorHandler.AuthorHandler
	BookHandler     *bookHandler.BookHandler
	NewsHandler     *newsHandler.NewsHandler
	ContactHandler  *contactHandler.ContactHandler
	HomeHandler     *homeHandler.HomeHandler
}

func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	db := database.NewPostgresDB(cfg.Database)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.HealthCheck(context.Background()); err != nil {
		return nil, fmt.Errorf("database health check failed: %w", err)
	}
	c.DB = db

	redisCache := infraCache.NewRedisCache(
		cfg.Redis.Host,
		cfg.Redis.Password,
		cfg.Redis.DB,
	)

	// Connect is not part of the Cache interface; a dead Redis is
	// degraded performance, not a startup failure.
	if rc, ok := redisCache.(*infraCache.RedisCache); ok {
		if err := rc.Connect(context.Background()); err != nil {
			logger.Warn("redis connection failed, continuing without warm cache", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}
	c.Cache = redisCache

	c.Email = email.NewSMTPEmailService(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.From)

	c.initRepositories()
	c.initServices()
	c.initHandlers()

	return c, nil
}

func (c *Container) initRepositories() {
	pool := c.DB.Pool

	c.CategoryRepo = categoryRepo.NewPostgresRepository(pool, c.Cache)
	c.AuthorRepo = authorRepo.NewPostgresRepository(pool, c.Cache)
	c.BookRepo = bookRepo.NewPostgresRepository(pool, c.Cache)
	c.NewsRepo = newsRepo.NewPostgresRepository(pool)
	c.ContactRepo = contactRepo.NewPostgresRepository(pool)
}

func (c *Container) initServices() {
	c.CategoryService = categoryService.NewCategoryService(c.CategoryRepo)
	c.AuthorService = authorService.NewAuthorService(c.AuthorRepo)
	c.BookService = bookService.NewBookService(c.BookRepo)
	c.NewsService = newsService.NewNewsService(c.NewsRepo)
	c.ContactService = contactService.NewContactService(
		c.ContactRepo,
		c.Email,
		c.Config.SMTP.AdminEmail,
		c.Config.SMTP.SendTimeout,
	)
}

func (c *Container) initHandlers() {
	c.CategoryHandler = categoryHandler.NewCategoryHandler(c.CategoryService)
	c.AuthorHandler = authorHandler.NewAuthorHandler(c.AuthorService, c.BookService)
	c.BookHandler = bookHandler.NewBookHandler(c.BookService)
	c.NewsHandler = newsHandler.NewNewsHandler(c.NewsService)
	c.ContactHandler = contactHandler.NewContactHandler(c.ContactService)
	c.HomeHandler = homeHandler.NewHomeHandler(c.BookService, c.AuthorService, c.NewsService)
}

// Cleanup releases infrastructure resources. Called during graceful
// shutdown.
func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
	}

	if c.Cache != nil {
		if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
			if err := rc.Close(); err != nil {
				logger.Error("failed to close redis client", err)
			}
		}
	}
}
