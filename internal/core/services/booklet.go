package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/calendlam/calendlam/internal/core/domain"
	"github.com/calendlam/calendlam/internal/core/ports/driven"
	"github.com/calendlam/calendlam/internal/core/ports/driving"
	"github.com/calendlam/calendlam/internal/logger"
)

// Ensure BookletService implements the interface.
var _ driving.BookletService = (*BookletService)(nil)

// ErrNoLayoutStore is returned by history operations when the service was
// created without a layout store.
var ErrNoLayoutStore = errors.New("layout store not configured")

// BookletService runs the pagination and imposition pipeline.
type BookletService struct {
	locales driven.LocaleCatalog
	layouts driven.LayoutStore
}

// NewBookletService creates a new booklet service.
// The layouts parameter is optional (can be nil).
func NewBookletService(locales driven.LocaleCatalog, layouts driven.LayoutStore) *BookletService {
	return &BookletService{
		locales: locales,
		layouts: layouts,
	}
}

// Build runs grid, page, signature and imposition stages in order.
func (s *BookletService) Build(ctx context.Context, settings domain.BookletSettings) (*domain.Booklet, error) {
	logger.Section("Booklet Layout")

	if err := settings.Validate(); err != nil {
		return nil, err
	}
	locales, err := s.resolveLocales(settings)
	if err != nil {
		return nil, err
	}

	grid, err := BuildGrid(settings.Year, locales, GridOptions{
		FirstWeekday: settings.FirstWeekday,
		WeekMode:     settings.WeekMode,
	})
	if err != nil {
		return nil, fmt.Errorf("build grid: %w", err)
	}

	pages, err := SequencePages(grid, settings.Labels)
	if err != nil {
		return nil, fmt.Errorf("sequence pages: %w", err)
	}

	signatures, err := Partition(pages, settings.PagesPerSignature)
	if err != nil {
		return nil, fmt.Errorf("partition: %w", err)
	}

	booklet := &domain.Booklet{
		ID:                uuid.New().String(),
		Year:              settings.Year,
		PagesPerSignature: settings.PagesPerSignature,
		ContentPages:      len(pages),
		BlankPages:        len(signatures)*settings.PagesPerSignature - len(pages),
		Signatures:        make([]domain.ImposedSignature, 0, len(signatures)),
		CreatedAt:         time.Now().UTC(),
	}

	sheets := 0
	for _, sig := range signatures {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		var imposed domain.ImposedSignature
		imposed, sheets, err = imposeSignature(sig, settings, sheets)
		if err != nil {
			return nil, fmt.Errorf("signature %d: %w", sig.Number, err)
		}
		booklet.Signatures = append(booklet.Signatures, imposed)
	}
	booklet.SheetCount = sheets
	logger.Debug("imposition: %d signatures, %d sheets", len(booklet.Signatures), sheets)

	if err := s.Verify(booklet); err != nil {
		return nil, err
	}

	logger.Info("Booklet %d: %d week pages, %d blank, %d signatures",
		booklet.Year, booklet.ContentPages, booklet.BlankPages, len(booklet.Signatures))
	return booklet, nil
}

// resolveLocales looks up and validates both name tables.
func (s *BookletService) resolveLocales(settings domain.BookletSettings) (domain.Locales, error) {
	if s.locales == nil {
		return domain.Locales{}, fmt.Errorf("%w: no locale catalog", domain.ErrConfiguration)
	}
	primary, err := s.locales.Lookup(settings.PrimaryLocale)
	if err != nil {
		return domain.Locales{}, fmt.Errorf("primary locale: %w", err)
	}
	secondary, err := s.locales.Lookup(settings.SecondaryLocale)
	if err != nil {
		return domain.Locales{}, fmt.Errorf("secondary locale: %w", err)
	}
	locales := domain.Locales{Primary: primary, Secondary: secondary}
	if err := locales.Validate(); err != nil {
		return domain.Locales{}, err
	}
	return locales, nil
}

// imposeSignature places a signature's pages into print order and numbers
// its sheets. sheetsBefore is the number of sheets in earlier signatures;
// the returned count includes this signature's sheets.
func imposeSignature(sig domain.Signature, settings domain.BookletSettings, sheetsBefore int) (domain.ImposedSignature, int, error) {
	order, err := Impose(sig.Pages)
	if err != nil {
		return domain.ImposedSignature{}, sheetsBefore, err
	}

	imposed := domain.ImposedSignature{
		Number: sig.Number,
		Pages:  make([]domain.ImposedPage, len(order)),
		Sheets: make([]domain.Sheet, len(order)/2),
	}
	for pos, page := range order {
		sheet := pos/2 + 1
		side := domain.SideFront
		if pos%2 == 1 {
			side = domain.SideBack
		}
		imposed.Pages[pos] = domain.ImposedPage{
			Page:              page,
			Position:          pos,
			Year:              settings.Year,
			Labels:            settings.Labels,
			SignatureNumber:   sig.Number,
			SheetNumber:       sheet,
			GlobalSheetNumber: sheetsBefore + sheet,
			Side:              side,
		}
	}
	for k := range imposed.Sheets {
		imposed.Sheets[k] = domain.Sheet{
			Number:       k + 1,
			GlobalNumber: sheetsBefore + k + 1,
			Front:        order[2*k],
			Back:         order[2*k+1],
		}
	}
	return imposed, sheetsBefore + len(imposed.Sheets), nil
}

// Verify undoes the imposition of every signature and checks that the
// pages come back in reading order with blanks only at the very end.
func (s *BookletService) Verify(booklet *domain.Booklet) error {
	if booklet == nil {
		return fmt.Errorf("%w: nil booklet", domain.ErrInvariantViolation)
	}
	per := booklet.PagesPerSignature
	next := 0
	sheets := 0
	for _, sig := range booklet.Signatures {
		if len(sig.Pages) != per {
			return fmt.Errorf("%w: signature %d has %d pages, want %d",
				domain.ErrInvariantViolation, sig.Number, len(sig.Pages), per)
		}

		printed := make([]domain.Page, len(sig.Pages))
		for pos, p := range sig.Pages {
			if p.Position != pos || p.SheetNumber != pos/2+1 || p.GlobalSheetNumber != sheets+pos/2+1 {
				return fmt.Errorf("%w: signature %d position %d is misnumbered",
					domain.ErrInvariantViolation, sig.Number, pos)
			}
			printed[pos] = p.Page
		}
		sheets += len(sig.Pages) / 2

		reading, err := Unimpose(printed)
		if err != nil {
			return err
		}
		for _, p := range reading {
			if p.Index() != next {
				return fmt.Errorf("%w: signature %d restores page %d where %d was expected",
					domain.ErrInvariantViolation, sig.Number, p.Index(), next)
			}
			if p.IsBlank() != (next >= booklet.ContentPages) {
				return fmt.Errorf("%w: page %d has unexpected blank state",
					domain.ErrInvariantViolation, next)
			}
			next++
		}
	}

	if next != booklet.ContentPages+booklet.BlankPages {
		return fmt.Errorf("%w: booklet holds %d pages, want %d",
			domain.ErrInvariantViolation, next, booklet.ContentPages+booklet.BlankPages)
	}
	if sheets != booklet.SheetCount {
		return fmt.Errorf("%w: booklet holds %d sheets, want %d",
			domain.ErrInvariantViolation, sheets, booklet.SheetCount)
	}
	return nil
}

// Locate finds the imposed page showing the given date.
func (s *BookletService) Locate(booklet *domain.Booklet, date time.Time) (*domain.ImposedPage, error) {
	if booklet == nil {
		return nil, domain.ErrNotFound
	}
	y, m, d := date.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	for _, p := range booklet.PrintOrder() {
		w := p.Week()
		if w == nil {
			continue
		}
		if !day.Before(w.First().Date) && !day.After(w.Last().Date) {
			found := p
			return &found, nil
		}
	}
	return nil, fmt.Errorf("%s: %w", day.Format(time.DateOnly), domain.ErrNotFound)
}

// Record saves the layout summary of a booklet. Without a layout store
// it does nothing.
func (s *BookletService) Record(ctx context.Context, booklet *domain.Booklet) error {
	if booklet == nil {
		return fmt.Errorf("%w: nil booklet", domain.ErrInvariantViolation)
	}
	if s.layouts == nil {
		return nil
	}
	if err := s.layouts.Save(ctx, domain.NewLayout(booklet)); err != nil {
		return fmt.Errorf("save layout: %w", err)
	}
	logger.Debug("recorded layout %s", booklet.ID)
	return nil
}

// History returns recorded runs, most recent first.
func (s *BookletService) History(ctx context.Context, limit int) ([]domain.Layout, error) {
	if s.layouts == nil {
		return nil, ErrNoLayoutStore
	}
	return s.layouts.List(ctx, limit)
}

// Get retrieves a recorded run by ID.
func (s *BookletService) Get(ctx context.Context, id string) (*domain.Layout, error) {
	if s.layouts == nil {
		return nil, ErrNoLayoutStore
	}
	return s.layouts.Get(ctx, id)
}
