package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/KasumiMercury/primind-car-care/internal/domain"
)

type maintenanceUseCaseImpl struct {
	repo    domain.MaintenanceRecordRepository
	carRepo domain.CarRepository
}

func NewMaintenanceUseCase(repo domain.MaintenanceRecordRepository, carRepo domain.CarRepository) MaintenanceUseCase {
	return &maintenanceUseCaseImpl{
		repo:    repo,
		carRepo: carRepo,
	}
}

func (uc *maintenanceUseCaseImpl) CreateRecord(ctx context.Context, input CreateMaintenanceRecordInput) (MaintenanceRecordOutput, error) {
	slog.DebugContext(ctx, "creating maintenance record",
		"user_id", input.UserID,
		"car_id", input.Record.CarID,
	)

	userID, err := parseUserID(input.UserID)
	if err != nil {
		return MaintenanceRecordOutput{}, err
	}

	details, err := input.Record.toDetails()
	if err != nil {
		return MaintenanceRecordOutput{}, err
	}

	if err := requireOwnedCar(ctx, uc.carRepo, userID, details.CarID); err != nil {
		return MaintenanceRecordOutput{}, err
	}

	record, err := domain.NewMaintenanceRecord(userID, details)
	if err != nil {
		return MaintenanceRecordOutput{}, newDomainValidationError(err, "record")
	}

	if err := uc.repo.Save(ctx, record); err != nil {
		slog.ErrorContext(ctx, "failed to save maintenance record",
			"error", err,
			"record_id", record.ID().String(),
		)

		return MaintenanceRecordOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	slog.DebugContext(ctx, "maintenance record created",
		"record_id", record.ID().String(),
	)

	return FromMaintenanceRecord(record), nil
}

func (uc *maintenanceUseCaseImpl) GetRecord(ctx context.Context, input GetMaintenanceRecordInput) (MaintenanceRecordOutput, error) {
	record, err := uc.loadOwnedRecord(ctx, input.UserID, input.ID)
	if err != nil {
		return MaintenanceRecordOutput{}, err
	}

	return FromMaintenanceRecord(record), nil
}

func (uc *maintenanceUseCaseImpl) ListRecords(ctx context.Context, input ListMaintenanceRecordsInput) (MaintenanceRecordsOutput, error) {
	userID, err := parseUserID(input.UserID)
	if err != nil {
		return MaintenanceRecordsOutput{}, err
	}

	var carID *domain.CarID

	if input.CarID != nil && *input.CarID != "" {
		id, err := domain.CarIDFromString(*input.CarID)
		if err != nil {
			return MaintenanceRecordsOutput{}, NewValidationError("car_id", err.Error())
		}

		carID = &id
	}

	records, err := uc.repo.FindByUserID(ctx, userID, carID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list maintenance records",
			"error", err,
			"user_id", input.UserID,
		)

		return MaintenanceRecordsOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	return FromMaintenanceRecords(records), nil
}

func (uc *maintenanceUseCaseImpl) UpdateRecord(ctx context.Context, input UpdateMaintenanceRecordInput) (MaintenanceRecordOutput, error) {
	slog.DebugContext(ctx, "updating maintenance record",
		"record_id", input.ID,
	)

	record, err := uc.loadOwnedRecord(ctx, input.UserID, input.ID)
	if err != nil {
		return MaintenanceRecordOutput{}, err
	}

	details, err := input.Record.toDetails()
	if err != nil {
		return MaintenanceRecordOutput{}, err
	}

	if !details.CarID.Equals(record.CarID()) {
		if err := requireOwnedCar(ctx, uc.carRepo, record.UserID(), details.CarID); err != nil {
			return MaintenanceRecordOutput{}, err
		}
	}

	if err := record.UpdateDetails(details); err != nil {
		return MaintenanceRecordOutput{}, newDomainValidationError(err, "record")
	}

	if err := uc.repo.Update(ctx, record); err != nil {
		if errors.Is(err, domain.ErrMaintenanceRecordNotFound) {
			return MaintenanceRecordOutput{}, fmt.Errorf("%w: %v", ErrNotFound, err)
		}

		slog.ErrorContext(ctx, "failed to update maintenance record",
			"error", err,
			"record_id", input.ID,
		)

		return MaintenanceRecordOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	return FromMaintenanceRecord(record), nil
}

func (uc *maintenanceUseCaseImpl) DeleteRecord(ctx context.Context, input DeleteMaintenanceRecordInput) error {
	slog.DebugContext(ctx, "deleting maintenance record",
		"record_id", input.ID,
	)

	record, err := uc.loadOwnedRecord(ctx, input.UserID, input.ID)
	if err != nil {
		return err
	}

	if err := uc.repo.Delete(ctx, record.ID()); err != nil {
		if errors.Is(err, domain.ErrMaintenanceRecordNotFound) {
			return fmt.Errorf("%w: %v", ErrNotFound, err)
		}

		slog.ErrorContext(ctx, "failed to delete maintenance record",
			"error", err,
			"record_id", input.ID,
		)

		return fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	slog.DebugContext(ctx, "maintenance record deleted",
		"record_id", input.ID,
	)

	return nil
}

func (uc *maintenanceUseCaseImpl) loadOwnedRecord(ctx context.Context, rawUserID, rawID string) (*domain.MaintenanceRecord, error) {
	userID, err := parseUserID(rawUserID)
	if err != nil {
		return nil, err
	}

	id, err := domain.MaintenanceRecordIDFromString(rawID)
	if err != nil {
		return nil, NewValidationError("id", err.Error())
	}

	record, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrMaintenanceRecordNotFound) {
			return nil, fmt.Errorf("%w: %v", ErrNotFound, err)
		}

		slog.ErrorContext(ctx, "failed to find maintenance record",
			"error", err,
			"record_id", rawID,
		)

		return nil, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	if !record.BelongsTo(userID) {
		return nil, fmt.Errorf("%w: %v", ErrNotFound, domain.ErrMaintenanceRecordNotFound)
	}

	return record, nil
}
