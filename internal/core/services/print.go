package services

import (
	"context"
	"fmt"
	"time"

	"htmlpdf/internal/core/domain"
	"htmlpdf/internal/env"
	"htmlpdf/internal/infrastructure/logger"
	"htmlpdf/internal/pkg/config"
	"htmlpdf/internal/render"
)

// PrintService orchestrates the document printing process
type PrintService struct {
	environment    env.Environment
	cacheService   *CacheService
	storageService *StorageService
	logger         logger.Logger
	config         config.PrintConfig
}

// NewPrintService creates a new print service
func NewPrintService(cfg config.PrintConfig, log logger.Logger) (*PrintService, error) {
	cacheService := NewCacheService()
	storageService := NewStorageService(cfg.OutputDirectory)

	return &PrintService{
		environment:    env.NewLocalEnvironment(log),
		cacheService:   cacheService,
		storageService: storageService,
		logger:         log.With("service", "print"),
		config:         cfg,
	}, nil
}

// ProcessDocument processes a document and generates output
func (ps *PrintService) ProcessDocument(ctx context.Context, doc *domain.Document) (*domain.RenderResult, error) {
	ps.logger.Info("Processing document", "document_id", doc.ID, "content_type", doc.ContentType)

	startTime := time.Now()

	if err := ps.validateDocument(doc); err != nil {
		return nil, fmt.Errorf("document validation failed: %w", err)
	}

	cacheKey := ps.generateCacheKey(doc)
	if cached, err := ps.cacheService.Get(cacheKey); err == nil && cached != nil {
		ps.logger.Info("Document found in cache", "document_id", doc.ID)
		if result, ok := cached.(*domain.RenderResult); ok {
			result.CacheHit = true
			return result, nil
		}
	}

	rendered, err := render.Render(ctx, doc.Content, "", doc.Options, ps.environment)
	if err != nil {
		return nil, fmt.Errorf("rendering failed: %w", err)
	}

	outputPath, err := ps.writeOutput(rendered.PDF, doc.Options)
	if err != nil {
		return nil, fmt.Errorf("output generation failed: %w", err)
	}

	result := &domain.RenderResult{
		OutputPath: outputPath,
		OutputSize: int64(len(rendered.PDF)),
		PageCount:  rendered.PageCount,
		RenderTime: time.Since(startTime),
		CacheHit:   false,
		Warnings:   make([]string, 0),
	}

	if doc.Options.Performance.EnableCache {
		_ = ps.cacheService.Set(cacheKey, result, doc.Options.Performance.CacheTTL)
	}

	ps.logger.Info("Document processed successfully",
		"document_id", doc.ID,
		"output_path", outputPath,
		"render_time", result.RenderTime,
		"page_count", result.PageCount)

	return result, nil
}

// ProcessJob processes a print job
func (ps *PrintService) ProcessJob(ctx context.Context, job interface{}) error {
	printJob, ok := job.(*domain.PrintJob)
	if !ok {
		return fmt.Errorf("invalid job type: expected *domain.PrintJob")
	}

	ps.logger.Info("Processing print job", "job_id", printJob.ID)

	printJob.Status = domain.JobStatusProcessing
	now := time.Now()
	printJob.StartedAt = &now

	result, err := ps.ProcessDocument(ctx, &printJob.Document)
	if err != nil {
		printJob.Status = domain.JobStatusFailed
		printJob.Error = err.Error()
		return err
	}

	printJob.Status = domain.JobStatusCompleted
	printJob.OutputPath = result.OutputPath
	completed := time.Now()
	printJob.CompletedAt = &completed

	return nil
}

// validateDocument validates a document before processing
func (ps *PrintService) validateDocument(doc *domain.Document) error {
	if doc == nil {
		return domain.ErrInvalidDocument
	}

	if doc.Content == "" {
		return domain.NewPrintError(domain.ErrCodeInvalidInput, "document content is empty", domain.ErrInvalidDocument)
	}

	if len(doc.Content) > int(ps.config.MaxFileSize) {
		return domain.NewPrintError(domain.ErrCodeResourceLimit, "document too large", domain.ErrDocumentTooLarge).
			WithDetail("size", len(doc.Content)).
			WithDetail("max_size", ps.config.MaxFileSize)
	}

	return nil
}

// writeOutput writes the rendered PDF bytes to storage and returns the
// path it was written to.
func (ps *PrintService) writeOutput(pdf []byte, options domain.PrintOptions) (string, error) {
	filename := fmt.Sprintf("output_%d.%s", time.Now().UnixNano(), options.Output.Format)
	outputPath := ps.storageService.GetPath(filename)

	if err := ps.storageService.WriteFile(outputPath, pdf); err != nil {
		return "", fmt.Errorf("failed to write PDF file: %w", err)
	}

	ps.logger.Info("Generated PDF", "output_path", outputPath, "size_bytes", len(pdf))
	return outputPath, nil
}

// generateCacheKey generates a cache key for a document
func (ps *PrintService) generateCacheKey(doc *domain.Document) string {
	return fmt.Sprintf("doc_%s_%d", doc.ID, len(doc.Content))
}
