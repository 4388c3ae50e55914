package services

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dmitrijs2005/reportvault/internal/common"
	"github.com/dmitrijs2005/reportvault/internal/dbx"
	"github.com/dmitrijs2005/reportvault/internal/server/models"
	"github.com/dmitrijs2005/reportvault/internal/server/repositories/repomanager"
	"github.com/google/uuid"

	sc "github.com/dmitrijs2005/reportvault/internal/server/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type ReportService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	config      *sc.Config
}

func NewReportService(db *sql.DB, m repomanager.RepositoryManager, config *sc.Config) *ReportService {
	return &ReportService{
		db:          db,
		repomanager: m,
		config:      config,
	}
}

// getRandomStorageKey produces a date-sharded object key for an
// archived snapshot.
func getRandomStorageKey() string {
	d := time.Now()
	return fmt.Sprintf("snapshots/%d/%d/%d/%v", d.Year(), d.Month(), d.Day(), uuid.New())
}

// SnapshotArchiveEnabled reports whether raw snapshots are kept in
// object storage. When disabled they are dropped at upload time.
func (s *ReportService) SnapshotArchiveEnabled() bool {
	return s.config.S3Bucket != ""
}

func (s *ReportService) getS3Client(ctx context.Context) (*s3.Client, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(s.config.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,
			s.config.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
	})

	return client, nil
}

// archiveSnapshot is a seam for testing uploads without an S3 backend.
var archiveSnapshot = func(ctx context.Context, s *ReportService, key string, snapshot []byte) error {
	client, err := s.getS3Client(ctx)
	if err != nil {
		return err
	}

	bucket := s.config.S3Bucket
	_, err = client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: &bucket,
		Key:    &key,
		Body:   bytes.NewReader(snapshot),
	})
	return err
}

// Upload stamps the acting user as owner, archives or drops the raw
// snapshot payload, and persists the report. Validation happens in the
// repository, before the row is written.
func (s *ReportService) Upload(ctx context.Context, userID string, report *models.Report, snapshot json.RawMessage) (*models.Report, error) {

	report.UserID = userID

	// The snapshot never reaches the database; it is either archived
	// to object storage or dropped.
	if len(snapshot) > 0 && s.SnapshotArchiveEnabled() {
		key := getRandomStorageKey()
		if err := archiveSnapshot(ctx, s, key, snapshot); err != nil {
			return nil, fmt.Errorf("error archiving snapshot: %w", err)
		}
		report.SnapshotKey = key
	}

	repo := s.repomanager.Reports(s.db)

	report, err := repo.Create(ctx, report)
	if err != nil {
		return nil, err
	}

	return report, nil
}

// GetByID returns a report by id. This is the one public read path:
// no identity is required.
func (s *ReportService) GetByID(ctx context.Context, id string) (*models.Report, error) {
	repo := s.repomanager.Reports(s.db)
	return repo.GetByID(ctx, id)
}

// ListForUser returns the acting user's reports, newest first.
func (s *ReportService) ListForUser(ctx context.Context, userID string) ([]*models.Report, error) {
	repo := s.repomanager.Reports(s.db)
	return repo.ListByUser(ctx, userID)
}

// Delete removes a report after checking ownership. Fetch and delete
// run in one transaction so the ownership check and the delete see the
// same row.
func (s *ReportService) Delete(ctx context.Context, userID string, id string) error {

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Reports(tx)

		report, err := repo.GetByID(ctx, id)
		if err != nil {
			return err
		}

		if err := authorizeOwner(report.UserID, userID); err != nil {
			return err
		}

		return repo.Delete(ctx, id)
	})
}

// SnapshotURL returns a presigned GET URL for a report's archived raw
// snapshot. Only the report owner may fetch it; reports without an
// archived snapshot report not-found.
func (s *ReportService) SnapshotURL(ctx context.Context, userID string, id string) (string, error) {

	repo := s.repomanager.Reports(s.db)

	report, err := repo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}

	if err := authorizeOwner(report.UserID, userID); err != nil {
		return "", err
	}

	if report.SnapshotKey == "" {
		return "", fmt.Errorf("report %s has no archived snapshot: %w", id, common.ErrorNotFound)
	}

	return presignSnapshotGet(ctx, s, report.SnapshotKey)
}

// presignSnapshotGet is a seam for testing without an S3 backend.
var presignSnapshotGet = func(ctx context.Context, s *ReportService, key string) (string, error) {
	client, err := s.getS3Client(ctx)
	if err != nil {
		return "", err
	}

	bucket := s.config.S3Bucket
	presignClient := s3.NewPresignClient(client)

	req, err := presignClient.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(s.config.SnapshotURLValidityDuration))
	if err != nil {
		return "", err
	}

	return req.URL, nil
}
