package main

import (
	"log"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quoteportal/collections"
	"quoteportal/handlers"
	"quoteportal/services"
)

func main() {
	app := pocketbase.New()

	// Create collections, seed data and run migrations on startup
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		collections.Setup(app)
		if err := collections.Seed(app); err != nil {
			log.Printf("Warning: seed data failed: %v", err)
		}
		if err := collections.MigrateBackfillShareTokens(app); err != nil {
			log.Printf("Warning: share token migration failed: %v", err)
		}
		if err := collections.MigrateRecomputeQuoteTotals(app); err != nil {
			log.Printf("Warning: totals migration failed: %v", err)
		}

		// Settle overdue quotes immediately, then hourly.
		if n, err := services.ExpireOverdueQuotes(app, time.Now()); err != nil {
			log.Printf("Warning: expiry sweep failed: %v", err)
		} else if n > 0 {
			log.Printf("expiry sweep: %d quote(s) expired on startup", n)
		}
		app.Cron().MustAdd("expireOverdueQuotes", "0 * * * *", func() {
			if _, err := services.ExpireOverdueQuotes(app, time.Now()); err != nil {
				log.Printf("expiry sweep failed: %v", err)
			}
		})

		return se.Next()
	})

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		// ── Quote CRUD ───────────────────────────────────────────
		se.Router.GET("/api/quotes", handlers.HandleQuoteList(app))
		se.Router.POST("/api/quotes", handlers.HandleQuoteCreate(app))
		se.Router.GET("/api/quotes/{id}", handlers.HandleQuoteView(app))
		se.Router.PATCH("/api/quotes/{id}", handlers.HandleQuoteEdit(app))
		se.Router.DELETE("/api/quotes/{id}", handlers.HandleQuoteDelete(app))

		// ── Quote operations ─────────────────────────────────────
		se.Router.POST("/api/quotes/{id}/duplicate", handlers.HandleQuoteDuplicate(app))
		se.Router.POST("/api/quotes/{id}/status", handlers.HandleQuoteStatus(app))

		// ── Line items ───────────────────────────────────────────
		se.Router.POST("/api/quotes/{id}/line-items", handlers.HandleLineItemAdd(app))
		se.Router.PATCH("/api/quotes/{id}/line-items/{itemId}", handlers.HandleLineItemUpdate(app))
		se.Router.DELETE("/api/quotes/{id}/line-items/{itemId}", handlers.HandleLineItemDelete(app))

		// ── Exports ──────────────────────────────────────────────
		se.Router.GET("/api/quotes/{id}/export/pdf", handlers.HandleQuoteExportPDF(app))
		se.Router.GET("/api/quotes/export/excel", handlers.HandlePortfolioExportExcel(app))

		// ── Templates ────────────────────────────────────────────
		se.Router.GET("/api/templates", handlers.HandleTemplateList(app))
		se.Router.POST("/api/templates/{id}/instantiate", handlers.HandleTemplateInstantiate(app))

		// ── Analytics ────────────────────────────────────────────
		se.Router.GET("/api/analytics", handlers.HandleAnalytics(app))

		// ── Public share page ────────────────────────────────────
		se.Router.GET("/share/{token}", handlers.HandleQuoteShare(app))

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
