package services

import (
	"fmt"

	"github.com/calendlam/calendlam/internal/core/domain"
	"github.com/calendlam/calendlam/internal/logger"
)

// Partition splits the page sequence into consecutive signatures of
// perSignature pages each, preserving reading order. The last signature is
// padded with blank pages up to capacity, so every signature is full.
// Blank pages continue the reading-order numbering after the last week.
//
// No pages yield no signatures. perSignature must be positive and even,
// otherwise Partition fails with domain.ErrConfiguration.
func Partition(pages []domain.ContentPage, perSignature int) ([]domain.Signature, error) {
	if err := domain.ValidatePagesPerSignature(perSignature); err != nil {
		return nil, err
	}
	if len(pages) == 0 {
		return nil, nil
	}

	count := (len(pages) + perSignature - 1) / perSignature
	signatures := make([]domain.Signature, 0, count)
	for start := 0; start < count*perSignature; start += perSignature {
		sig := domain.Signature{
			Number: len(signatures) + 1,
			Pages:  make([]domain.Page, 0, perSignature),
		}
		for i := start; i < start+perSignature; i++ {
			if i < len(pages) {
				if pages[i].Position != i {
					return nil, fmt.Errorf("%w: page at %d has index %d",
						domain.ErrInvariantViolation, i, pages[i].Position)
				}
				sig.Pages = append(sig.Pages, pages[i])
				continue
			}
			sig.Pages = append(sig.Pages, domain.BlankPage{Position: i})
		}
		signatures = append(signatures, sig)
	}

	logger.Debug("signatures: %d of %d pages, %d blank", len(signatures), perSignature,
		count*perSignature-len(pages))
	return signatures, nil
}
