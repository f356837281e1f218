package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/bigtree-group/marketing-webhooks/internal/infra/database"
	"github.com/bigtree-group/marketing-webhooks/internal/infra/http/handlers"
	appmiddleware "github.com/bigtree-group/marketing-webhooks/internal/infra/http/middleware"
	"github.com/bigtree-group/marketing-webhooks/internal/infra/integration/salesforce"
	"github.com/bigtree-group/marketing-webhooks/internal/infra/integration/sheets"
	"github.com/bigtree-group/marketing-webhooks/internal/infra/integration/woocommerce"
	"github.com/bigtree-group/marketing-webhooks/internal/infra/mail"
	"github.com/bigtree-group/marketing-webhooks/internal/infra/queue"
	"github.com/bigtree-group/marketing-webhooks/internal/infra/specsheet"
	"github.com/bigtree-group/marketing-webhooks/internal/usecase"
)

func main() {
	godotenv.Load()
	ctx := context.Background()

	// 1. Postgres audit log (optional: endpoints degrade to sheet-only)
	var db *sql.DB
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		var err error
		db, err = database.NewDBConnection(dsn)
		if err != nil {
			log.Fatal(err)
		}
		defer db.Close()
	}

	// 2. RabbitMQ (optional: without it every endpoint runs synchronously)
	var rabbit *queue.RabbitMQ
	var producer queue.QueueProducerInterface
	if url := os.Getenv("RABBITMQ_URL"); url != "" {
		var err error
		rabbit, err = queue.NewRabbitMQ(url)
		if err != nil {
			log.Fatal(err)
		}
		defer rabbit.Conn.Close()
		defer rabbit.Ch.Close()
		producer = queue.NewProducer(rabbit.Conn, rabbit.Ch)
	}

	// 3. Sheets client (fails closed when the grant cannot be refreshed)
	creds, err := sheets.LoadCredentialsFile(getenv("SHEETS_TOKEN_FILE", "token.json"))
	if err != nil {
		log.Fatal(err)
	}
	sheetClient := sheets.NewClient(creds.HTTPClient(ctx), sheets.DefaultBaseURL, os.Getenv("SHEET_ID"))

	// 4. Store, renderer, mail, CRM
	store := woocommerce.NewClient(
		os.Getenv("WC_STORE_URL"),
		os.Getenv("WC_CONSUMER_KEY"),
		os.Getenv("WC_CONSUMER_SECRET"),
	)

	tempDir := getenv("TEMP_DIR", "files/temp")
	if err := os.MkdirAll(tempDir, 0o755); err != nil {
		log.Fatal(err)
	}
	renderer := specsheet.NewRenderer(getenv("TEMPLATE_DIR", "templates"), tempDir, store)
	if path := os.Getenv("SOFFICE_PATH"); path != "" {
		renderer.SofficePath = path
	}

	mailPort, _ := strconv.Atoi(getenv("MAIL_PORT", "587"))
	mailSender := mail.NewEmailSender(
		os.Getenv("MAIL_HOST"), mailPort, os.Getenv("MAIL_USER"), os.Getenv("MAIL_PASS"),
		getenv("MAIL_FROM", "BigTree Group <web@bigtree-group.com>"),
		getenv("MAIL_TEMPLATE_DIR", "templates/mail"),
	)

	crm := salesforce.NewClient(os.Getenv("SF_ORG_ID"), os.Getenv("SF_RETURN_URL"))

	var enquiryRepo usecase.EnquiryRepositoryInterface
	if db != nil {
		enquiryRepo = database.NewEnquiryRepository(db)
	}

	// 5. UseCases. FailOnSheetError differs per endpoint on purpose: the
	// sheet is the only side effect for newsletter/contact, but specsheet
	// and enquiry flows prioritize the email over the audit row.
	newsletterUC := usecase.NewNewsletterUseCase(sheetClient, getenv("SHEET_TAB_NEWSLETTER", "Sheet1"))
	specsheetUC := usecase.NewSpecsheetRequestUseCase(
		sheetClient, getenv("SHEET_TAB_SPECSHEETS", "Specsheet Requests"),
		store, renderer, mailSender, false,
	)
	enquiryUC := usecase.NewProductEnquiryUseCase(
		enquiryRepo, sheetClient, getenv("SHEET_TAB_ENQUIRIES", "Product Enquiries"),
		store, renderer, mailSender, crm, false,
	)
	sampleUC := usecase.NewSampleRequestUseCase(
		enquiryRepo, sheetClient, getenv("SHEET_TAB_SAMPLES", "Sample Requests"),
		crm, true,
	)
	contactUC := usecase.NewContactUseCase(
		sheetClient, getenv("SHEET_TAB_CONTACT", "Contact"),
		crm, true,
	)

	// 6. Worker draining deferred lead jobs
	if rabbit != nil {
		worker := queue.NewWorker(rabbit.Ch, enquiryUC, sampleUC)
		go worker.Start(queue.QueueName)
	}

	// 7. Handlers
	background := rabbit != nil
	newsletterHandler := handlers.NewNewsletterHandler(newsletterUC)
	specsheetHandler := handlers.NewSpecsheetHandler(specsheetUC)
	enquiryHandler := handlers.NewEnquiryHandler(enquiryUC, producer, background)
	sampleHandler := handlers.NewSampleHandler(sampleUC, producer, background)
	contactHandler := handlers.NewContactHandler(contactUC)
	healthHandler := handlers.NewHealthHandler(db, rabbitConn(rabbit))

	// 8. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(appmiddleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"https://bigtree-group.com", "*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
	}))

	r.Post("/newsletter-webhook", newsletterHandler.Handle)
	r.Get("/health-check", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	// The product endpoints are the only ones the site builder signs.
	apiKey := os.Getenv("WEBHOOK_API_KEY")
	r.Group(func(r chi.Router) {
		r.Use(handlers.RequireAPIKey(apiKey))
		r.Post("/single-product-specsheet-webhook", specsheetHandler.Handle)
		r.Post("/product-enquiry-webhook", enquiryHandler.Handle)
		r.Post("/request-sample-webhook", sampleHandler.Handle)
		r.Post("/contact-webhook", contactHandler.Handle)
	})

	port := getenv("PORT", "8001")
	log.Printf("🔥 Webhook service running on port %s", port)
	http.ListenAndServe(":"+port, r)
}

func rabbitConn(r *queue.RabbitMQ) *amqp.Connection {
	if r == nil {
		return nil
	}
	return r.Conn
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
