package server

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/augment"
	"resume-builder/internal/auth"
	"resume-builder/internal/comments"
	"resume-builder/internal/export"
	"resume-builder/internal/llm"
	openaiclient "resume-builder/internal/llm/openai"
	"resume-builder/internal/profile"
	"resume-builder/internal/resumes"
	"resume-builder/internal/sessions"
	"resume-builder/internal/shared/config"
	"resume-builder/internal/shared/server/middleware"
	"resume-builder/internal/shared/server/respond"
	"resume-builder/internal/shared/storage/db"
	"resume-builder/internal/shared/storage/object"
	localstore "resume-builder/internal/shared/storage/object/local"
	s3store "resume-builder/internal/shared/storage/object/s3"
	"resume-builder/internal/users"
)

const artifactMount = "/artifacts"

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
	)

	// Dependencies
	var sqlDB *sql.DB
	if cfg.DatabaseURL != "" {
		dbConn, err := db.Connect(context.Background(), cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
		if err != nil {
			log.Printf("failed to connect database, falling back to memory: %v", err)
		} else {
			if err := db.RunMigrations(context.Background(), dbConn); err != nil {
				log.Printf("failed to run migrations, falling back to memory: %v", err)
				dbConn.Close()
				dbConn = nil
			}
		}
		sqlDB = dbConn
	}

	store := buildStore(cfg)
	llmClient := buildLLM(cfg)
	exporter := buildExporter(cfg)

	var (
		usersRepo    users.Repo
		sessionsRepo sessions.Repo
		profileRepo  profile.Repo
		resumesRepo  resumes.Repo
		commentsRepo comments.Repo
	)
	if sqlDB != nil {
		usersRepo = &users.PGRepo{DB: sqlDB}
		sessionsRepo = &sessions.PGRepo{DB: sqlDB}
		profileRepo = &profile.PGRepo{DB: sqlDB}
		resumesRepo = &resumes.PGRepo{DB: sqlDB}
		commentsRepo = &comments.PGRepo{DB: sqlDB}
	} else {
		profileMem := profile.NewMemoryRepo()
		usersRepo = users.NewMemoryRepo()
		sessionsRepo = sessions.NewMemoryRepo()
		profileRepo = profileMem
		resumesRepo = resumes.NewMemoryRepo(profileMem)
		commentsRepo = comments.NewMemoryRepo()
	}

	usersSvc := users.NewService(usersRepo, cfg.AllowedEmailDomains)
	authSvc := auth.NewService(usersSvc, sessionsRepo)
	profileSvc := profile.NewService(profileRepo, usersRepo, sessionsRepo, resumesRepo)
	augmentSvc := augment.NewService(llmClient)
	resumesSvc := resumes.NewService(resumesRepo, usersRepo, profileRepo, augmentSvc, store, exporter)
	commentsSvc := comments.NewService(commentsRepo, resumesRepo)

	authHandler := auth.NewHandler(authSvc)
	profileHandler := profile.NewHandler(profileSvc)
	resumesHandler := resumes.NewHandler(resumesSvc, commentsSvc)
	commentsHandler := comments.NewHandler(commentsSvc, resumesRepo)

	r.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	if cfg.ObjectStoreType == "local" {
		r.Static(artifactMount, cfg.LocalStoreDir)
	}

	// The email-keyed lookup family and its experience CRUD are an open
	// integration surface; only owner-scoped routes need a session.
	public := r.Group("/")
	authHandler.RegisterPublic(public)
	profileHandler.RegisterRoutes(public)
	resumesHandler.RegisterPublic(public)

	authed := r.Group("/", middleware.Session(authSvc))
	authHandler.RegisterAuthed(authed)
	resumesHandler.RegisterAuthed(authed)
	commentsHandler.RegisterRoutes(authed)

	return r
}

func buildStore(cfg config.Config) object.ObjectStore {
	if cfg.ObjectStoreType == "s3" {
		store, err := s3store.New(context.Background(), cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix)
		if err != nil {
			log.Printf("failed to init s3 store, falling back to local: %v", err)
		} else {
			return store
		}
	}
	return localstore.New(cfg.LocalStoreDir, artifactMount)
}

func buildLLM(cfg config.Config) llm.Client {
	apiKey := strings.TrimSpace(os.Getenv("OPENAI_API_KEY"))
	if cfg.LLMProvider == "openai" && apiKey != "" {
		client, err := openaiclient.NewClient(apiKey, cfg.LLMModel)
		if err != nil {
			log.Printf("failed to init openai client, using placeholder: %v", err)
		} else {
			return client
		}
	}
	return llm.PlaceholderClient{}
}

func buildExporter(cfg config.Config) export.Exporter {
	if strings.TrimSpace(cfg.PDFConverterURL) == "" {
		return export.Disabled{}
	}
	client, err := export.NewPDFClient(cfg.PDFConverterURL)
	if err != nil {
		log.Printf("failed to init pdf converter client, export disabled: %v", err)
		return export.Disabled{}
	}
	return client
}

// Addr formats the listen address for the configured port.
func Addr(port string) string {
	if strings.HasPrefix(port, ":") {
		return port
	}
	return ":" + port
}
