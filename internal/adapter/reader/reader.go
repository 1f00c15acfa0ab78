package reader

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/MikeRez0/payopt/internal/core/domain"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// FileReader loads orders and payment methods from JSON or YAML files.
// Both files hold a list of records.
type FileReader struct {
	logger   *zap.Logger
	validate *validator.Validate
}

func NewFileReader(logger *zap.Logger) *FileReader {
	return &FileReader{
		logger:   logger,
		validate: validator.New(),
	}
}

func (r *FileReader) ReadOrders(ctx context.Context, path string) ([]domain.Order, error) {
	var records []orderRecord
	if err := r.load(ctx, path, "orders", &records); err != nil {
		return nil, err
	}

	orders := make([]domain.Order, 0, len(records))
	for i, rec := range records {
		if err := r.validate.StructCtx(ctx, rec); err != nil {
			return nil, fmt.Errorf("orders record %d: %v: %w", i, err, domain.ErrInputParse)
		}
		o, err := rec.toDomain()
		if err != nil {
			return nil, fmt.Errorf("%v: %w", err, domain.ErrInputParse)
		}
		orders = append(orders, o)
	}

	r.logger.Debug("Orders loaded", zap.String("path", path), zap.Int("count", len(orders)))
	return orders, nil
}

func (r *FileReader) ReadPaymentMethods(ctx context.Context, path string) ([]domain.PaymentMethod, error) {
	var records []paymentMethodRecord
	if err := r.load(ctx, path, "payment methods", &records); err != nil {
		return nil, err
	}

	methods := make([]domain.PaymentMethod, 0, len(records))
	for i, rec := range records {
		if err := r.validate.StructCtx(ctx, rec); err != nil {
			return nil, fmt.Errorf("payment methods record %d: %v: %w", i, err, domain.ErrInputParse)
		}
		m, err := rec.toDomain()
		if err != nil {
			return nil, fmt.Errorf("%v: %w", err, domain.ErrInputParse)
		}
		methods = append(methods, m)
	}

	r.logger.Debug("Payment methods loaded", zap.String("path", path), zap.Int("count", len(methods)))
	return methods, nil
}

func (r *FileReader) load(ctx context.Context, path, kind string, dst any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%s file not found: %s: %w", kind, path, domain.ErrInputNotFound)
		}
		return fmt.Errorf("reading %s file %s: %w", kind, path, err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, dst)
	case ".json", "":
		err = json.Unmarshal(data, dst)
	default:
		return fmt.Errorf("%s file %s: unsupported format %q: %w", kind, path, ext, domain.ErrInputParse)
	}
	if err != nil {
		return fmt.Errorf("%s file %s: %v: %w", kind, path, err, domain.ErrInputParse)
	}
	return nil
}
