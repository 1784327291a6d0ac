package app

import "context"

type MaintenanceUseCase interface {
	CreateRecord(ctx context.Context, input CreateMaintenanceRecordInput) (MaintenanceRecordOutput, error)
	GetRecord(ctx context.Context, input GetMaintenanceRecordInput) (MaintenanceRecordOutput, error)
	ListRecords(ctx context.Context, input ListMaintenanceRecordsInput) (MaintenanceRecordsOutput, error)
	UpdateRecord(ctx context.Context, input UpdateMaintenanceRecordInput) (MaintenanceRecordOutput, error)
	DeleteRecord(ctx context.Context, input DeleteMaintenanceRecordInput) error
}
