package drone

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"drone-fleet-manager/internal/infrastructure/database/sqlite"
	appErrors "drone-fleet-manager/pkg/errors"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	db := sqlite.NewTestDB(t)
	return NewService(sqlite.NewDroneRepository(db), sqlite.NewMedicationRepository(db))
}

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }
func strPtr(v string) *string     { return &v }

func registerTestDrone(t *testing.T, s *Service, serial string, weightLimit float64, battery int) *DroneResponse {
	t.Helper()
	d, err := s.RegisterDrone(context.Background(), &RegisterDroneRequest{
		SerialNumber:    serial,
		Model:           "Middleweight",
		WeightLimit:     floatPtr(weightLimit),
		BatteryCapacity: intPtr(battery),
	})
	if err != nil {
		t.Fatalf("RegisterDrone(%s): %v", serial, err)
	}
	return d
}

func validLoadRequest() *LoadMedicationRequest {
	return &LoadMedicationRequest{
		Name:   "Paracetamol-500mg",
		Weight: 50,
		Code:   "PARA_500",
		Image:  "https://example.com/para.jpg",
	}
}

func assertAppError(t *testing.T, err error, wantCode, wantMsg string) {
	t.Helper()

	var appErr *appErrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *AppError, got %T: %v", err, err)
	}
	if appErr.Code != wantCode {
		t.Errorf("error code = %q, want %q", appErr.Code, wantCode)
	}
	if wantMsg != "" && appErr.Message != wantMsg {
		t.Errorf("error message = %q, want %q", appErr.Message, wantMsg)
	}
}

func TestRegisterDroneDefaults(t *testing.T) {
	s := newTestService(t)

	d, err := s.RegisterDrone(context.Background(), &RegisterDroneRequest{
		SerialNumber: "SN-DEFAULTS",
		Model:        "Lightweight",
		WeightLimit:  floatPtr(150),
	})
	if err != nil {
		t.Fatalf("RegisterDrone: %v", err)
	}

	if d.BatteryCapacity != 100 {
		t.Errorf("battery = %d, want default 100", d.BatteryCapacity)
	}
	if d.State != "IDLE" {
		t.Errorf("state = %q, want default IDLE", d.State)
	}
}

func TestRegisterDroneExplicitState(t *testing.T) {
	s := newTestService(t)

	d, err := s.RegisterDrone(context.Background(), &RegisterDroneRequest{
		SerialNumber:    "SN-STATE",
		Model:           "Heavyweight",
		WeightLimit:     floatPtr(500),
		BatteryCapacity: intPtr(40),
		State:           strPtr("RETURNING"),
	})
	if err != nil {
		t.Fatalf("RegisterDrone: %v", err)
	}
	if d.State != "RETURNING" {
		t.Errorf("state = %q, want RETURNING", d.State)
	}
}

func TestRegisterDroneValidation(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	longSerial := make([]byte, 101)
	for i := range longSerial {
		longSerial[i] = 'x'
	}
	_, err := s.RegisterDrone(ctx, &RegisterDroneRequest{
		SerialNumber: string(longSerial),
		Model:        "Lightweight",
		WeightLimit:  floatPtr(100),
	})
	assertAppError(t, err, appErrors.CodeValidation, "Serial number must not exceed 100 characters")

	_, err = s.RegisterDrone(ctx, &RegisterDroneRequest{
		SerialNumber: "SN-HEAVY",
		Model:        "Heavyweight",
		WeightLimit:  floatPtr(501),
	})
	assertAppError(t, err, appErrors.CodeValidation, "Weight limit must not exceed 500gr")

	_, err = s.RegisterDrone(ctx, &RegisterDroneRequest{
		SerialNumber:    "SN-BATT",
		Model:           "Lightweight",
		WeightLimit:     floatPtr(100),
		BatteryCapacity: intPtr(101),
	})
	assertAppError(t, err, appErrors.CodeValidation, "Battery capacity must be between 0 and 100 percent")

	// A provided zero weight limit is rejected, not treated as omitted.
	_, err = s.RegisterDrone(ctx, &RegisterDroneRequest{
		SerialNumber: "SN-ZERO",
		Model:        "Lightweight",
		WeightLimit:  floatPtr(0),
	})
	assertAppError(t, err, appErrors.CodeValidation, "")
}

func TestRegisterDroneDuplicateSerial(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	registerTestDrone(t, s, "SN-ONCE", 300, 80)

	_, err := s.RegisterDrone(ctx, &RegisterDroneRequest{
		SerialNumber: "SN-ONCE",
		Model:        "Lightweight",
		WeightLimit:  floatPtr(100),
	})
	assertAppError(t, err, appErrors.CodeConstraintViolation, "Drone with this serial number already exists")
}

func TestLoadMedicationHappyPath(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	d := registerTestDrone(t, s, "SN-LOAD", 300, 80)

	result, err := s.LoadMedication(ctx, d.ID, validLoadRequest())
	if err != nil {
		t.Fatalf("LoadMedication: %v", err)
	}

	if result.Medication.Code != "PARA_500" {
		t.Errorf("medication code = %q, want PARA_500", result.Medication.Code)
	}
	if result.Medication.DroneID == nil || *result.Medication.DroneID != d.ID {
		t.Errorf("medication drone reference = %v, want %v", result.Medication.DroneID, d.ID)
	}
	if result.Drone.State != "LOADING" {
		t.Errorf("drone state after first load = %q, want LOADING", result.Drone.State)
	}
	if len(result.Drone.Medications) != 1 {
		t.Errorf("drone has %d medications, want 1", len(result.Drone.Medications))
	}
}

func TestLoadMedicationKeepsNonIdleState(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	d := registerTestDrone(t, s, "SN-MULTI", 300, 80)

	if _, err := s.LoadMedication(ctx, d.ID, validLoadRequest()); err != nil {
		t.Fatalf("first load: %v", err)
	}

	second := validLoadRequest()
	second.Name = "Amoxicillin-250mg"
	second.Code = "AMOX_250"
	second.Weight = 30

	result, err := s.LoadMedication(ctx, d.ID, second)
	if err != nil {
		t.Fatalf("second load: %v", err)
	}
	if result.Drone.State != "LOADING" {
		t.Errorf("state after second load = %q, want LOADING", result.Drone.State)
	}
	if len(result.Drone.Medications) != 2 {
		t.Errorf("drone has %d medications, want 2", len(result.Drone.Medications))
	}
}

func TestLoadMedicationDroneNotFound(t *testing.T) {
	s := newTestService(t)

	_, err := s.LoadMedication(context.Background(), uuid.New(), validLoadRequest())
	assertAppError(t, err, appErrors.CodeNotFound, "Drone not found")
}

func TestLoadMedicationLowBattery(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	d := registerTestDrone(t, s, "SN-LOW", 300, 24)

	_, err := s.LoadMedication(ctx, d.ID, validLoadRequest())
	assertAppError(t, err, appErrors.CodeLowBattery, "Cannot load drone with battery level below 25%")

	// The battery floor takes precedence over field validation, and
	// nothing is persisted.
	bad := validLoadRequest()
	bad.Weight = -1
	_, err = s.LoadMedication(ctx, d.ID, bad)
	assertAppError(t, err, appErrors.CodeLowBattery, "Cannot load drone with battery level below 25%")

	meds, err := s.GetLoadedMedications(ctx, d.ID)
	if err != nil {
		t.Fatalf("GetLoadedMedications: %v", err)
	}
	if len(meds) != 0 {
		t.Errorf("got %d medications after rejected loads, want 0", len(meds))
	}
}

func TestLoadMedicationBatteryAtFloor(t *testing.T) {
	s := newTestService(t)

	d := registerTestDrone(t, s, "SN-FLOOR", 300, 25)
	if _, err := s.LoadMedication(context.Background(), d.ID, validLoadRequest()); err != nil {
		t.Fatalf("load at exactly 25%% battery should succeed, got %v", err)
	}
}

func TestLoadMedicationWeightExceeded(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	d := registerTestDrone(t, s, "SN-WEIGHT", 300, 80)

	first := validLoadRequest()
	first.Weight = 250
	if _, err := s.LoadMedication(ctx, d.ID, first); err != nil {
		t.Fatalf("first load: %v", err)
	}

	second := validLoadRequest()
	second.Name = "Insulin-10ml"
	second.Code = "INSU_10"
	second.Weight = 60

	_, err := s.LoadMedication(ctx, d.ID, second)
	assertAppError(t, err, appErrors.CodeWeightExceeded,
		"Cannot load medication. Weight limit exceeded. Current: 250gr, New: 60gr, Limit: 300gr")

	meds, err := s.GetLoadedMedications(ctx, d.ID)
	if err != nil {
		t.Fatalf("GetLoadedMedications: %v", err)
	}
	if len(meds) != 1 {
		t.Errorf("got %d medications after rejected load, want 1", len(meds))
	}
}

func TestLoadMedicationExactLimit(t *testing.T) {
	s := newTestService(t)

	d := registerTestDrone(t, s, "SN-EXACT", 300, 80)

	req := validLoadRequest()
	req.Weight = 300
	if _, err := s.LoadMedication(context.Background(), d.ID, req); err != nil {
		t.Fatalf("load at exactly the weight limit should succeed, got %v", err)
	}
}

func TestLoadMedicationFieldValidation(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	d := registerTestDrone(t, s, "SN-FIELDS", 300, 80)

	req := validLoadRequest()
	req.Name = "bad name!"
	_, err := s.LoadMedication(ctx, d.ID, req)
	assertAppError(t, err, appErrors.CodeValidation, "Medication name can only contain letters, numbers, hyphens, and underscores")

	req = validLoadRequest()
	req.Code = "bad_code"
	_, err = s.LoadMedication(ctx, d.ID, req)
	assertAppError(t, err, appErrors.CodeValidation, "Medication code can only contain uppercase letters, underscores, and numbers")

	req = validLoadRequest()
	req.Weight = 0
	_, err = s.LoadMedication(ctx, d.ID, req)
	assertAppError(t, err, appErrors.CodeValidation, "Medication weight must be a positive number")
}

func TestGetAvailableDrones(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	registerTestDrone(t, s, "SN-AV1", 300, 50)
	registerTestDrone(t, s, "SN-AV2", 300, 90)
	registerTestDrone(t, s, "SN-AV3", 300, 20)
	busy := registerTestDrone(t, s, "SN-AV4", 300, 100)
	if _, err := s.UpdateState(ctx, busy.ID, "DELIVERING"); err != nil {
		t.Fatalf("UpdateState: %v", err)
	}

	available, err := s.GetAvailableDrones(ctx)
	if err != nil {
		t.Fatalf("GetAvailableDrones: %v", err)
	}

	wantSerials := []string{"SN-AV2", "SN-AV1"}
	if len(available) != len(wantSerials) {
		t.Fatalf("got %d available drones, want %d", len(available), len(wantSerials))
	}
	for i, want := range wantSerials {
		if available[i].SerialNumber != want {
			t.Errorf("available[%d] = %s, want %s", i, available[i].SerialNumber, want)
		}
	}
}

func TestGetBatteryLevel(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	ok := registerTestDrone(t, s, "SN-OK", 300, 25)
	low := registerTestDrone(t, s, "SN-LOWB", 300, 24)
	empty := registerTestDrone(t, s, "SN-EMPTY", 300, 0)

	resp, err := s.GetBatteryLevel(ctx, ok.ID)
	if err != nil {
		t.Fatalf("GetBatteryLevel: %v", err)
	}
	if resp.Status != "OK" || resp.BatteryLevel != 25 {
		t.Errorf("got %+v, want battery 25 status OK", resp)
	}

	resp, err = s.GetBatteryLevel(ctx, low.ID)
	if err != nil {
		t.Fatalf("GetBatteryLevel: %v", err)
	}
	if resp.Status != "LOW_BATTERY" {
		t.Errorf("status = %q, want LOW_BATTERY", resp.Status)
	}

	// A zero battery is a real reading, not a missing drone.
	resp, err = s.GetBatteryLevel(ctx, empty.ID)
	if err != nil {
		t.Fatalf("GetBatteryLevel with zero battery: %v", err)
	}
	if resp.BatteryLevel != 0 || resp.Status != "LOW_BATTERY" {
		t.Errorf("got %+v, want battery 0 status LOW_BATTERY", resp)
	}

	_, err = s.GetBatteryLevel(ctx, uuid.New())
	assertAppError(t, err, appErrors.CodeNotFound, "Drone not found")
}

func TestUpdateState(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	d := registerTestDrone(t, s, "SN-TRANS", 300, 80)

	// Transitions are unconstrained across the six states.
	for _, state := range []string{"DELIVERED", "LOADING", "RETURNING", "IDLE"} {
		updated, err := s.UpdateState(ctx, d.ID, state)
		if err != nil {
			t.Fatalf("UpdateState(%s): %v", state, err)
		}
		if updated.State != state {
			t.Errorf("state = %q, want %q", updated.State, state)
		}
	}

	_, err := s.UpdateState(ctx, d.ID, "FLYING")
	assertAppError(t, err, appErrors.CodeValidation, "Invalid drone state")

	_, err = s.UpdateState(ctx, uuid.New(), "IDLE")
	assertAppError(t, err, appErrors.CodeNotFound, "Drone not found")
}

func TestGetLoadedMedicationsReflectsLoads(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	d := registerTestDrone(t, s, "SN-REFLECT", 500, 80)

	codes := map[string]bool{"PARA_500": false, "AMOX_250": false, "INSU_10": false}
	weights := map[string]float64{"PARA_500": 50, "AMOX_250": 30, "INSU_10": 25}
	for code, weight := range weights {
		req := validLoadRequest()
		req.Name = "Med-" + code
		req.Code = code
		req.Weight = weight
		if _, err := s.LoadMedication(ctx, d.ID, req); err != nil {
			t.Fatalf("LoadMedication(%s): %v", code, err)
		}
	}

	meds, err := s.GetLoadedMedications(ctx, d.ID)
	if err != nil {
		t.Fatalf("GetLoadedMedications: %v", err)
	}
	if len(meds) != 3 {
		t.Fatalf("got %d medications, want 3", len(meds))
	}
	for _, m := range meds {
		seen, known := codes[m.Code]
		if !known {
			t.Errorf("unexpected medication code %q", m.Code)
			continue
		}
		if seen {
			t.Errorf("duplicate medication code %q", m.Code)
		}
		codes[m.Code] = true
		if m.Weight != weights[m.Code] {
			t.Errorf("medication %s weight = %v, want %v", m.Code, m.Weight, weights[m.Code])
		}
	}
}

func TestDeleteDrone(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	d := registerTestDrone(t, s, "SN-RM", 300, 80)
	if err := s.DeleteDrone(ctx, d.ID); err != nil {
		t.Fatalf("DeleteDrone: %v", err)
	}

	_, err := s.GetDroneByID(ctx, d.ID)
	assertAppError(t, err, appErrors.CodeNotFound, "Drone not found")

	err = s.DeleteDrone(ctx, d.ID)
	assertAppError(t, err, appErrors.CodeNotFound, "Drone not found")
}
