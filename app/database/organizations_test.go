package database

import (
	"errors"
	"testing"

	"github.com/ManuelValdivia03/ProyectoConstruccion-sub001/app/models"
)

func mustCreateOrganization(t *testing.T, name string) *models.LinkedOrganization {
	t.Helper()
	organization := &models.LinkedOrganization{
		Name:       name,
		CellPhone:  uniquePhone(),
		Department: "Sistemas",
		Email:      uniqueEmail(),
		Status:     models.OrganizationActive,
	}
	if err := CreateOrganization(testDB, organization); err != nil {
		t.Fatal(err)
	}
	return organization
}

func TestOrganizationRoundTripAndDuplicateName(t *testing.T) {
	name := "Organización " + uniqueKey()
	organization := mustCreateOrganization(t, name)

	got, err := GetOrganizationByID(testDB, organization.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got == nil || got.Name != name || got.Department != "Sistemas" {
		t.Fatalf("round trip mismatch: %+v", got)
	}

	dup := &models.LinkedOrganization{
		Name:      name,
		CellPhone: uniquePhone(),
		Email:     uniqueEmail(),
	}
	if err := CreateOrganization(testDB, dup); !errors.Is(err, ErrDuplicateOrganizationName) {
		t.Fatalf("expected ErrDuplicateOrganizationName, got %v", err)
	}
}

func TestCreateOrganizationValidation(t *testing.T) {
	bad := &models.LinkedOrganization{Name: "Tel Corto", CellPhone: "123", Email: uniqueEmail()}
	if err := CreateOrganization(testDB, bad); !errors.Is(err, ErrInvalidPhone) {
		t.Fatalf("expected ErrInvalidPhone, got %v", err)
	}

	bad = &models.LinkedOrganization{Name: "Mail Malo", CellPhone: uniquePhone(), Email: "sin-arroba"}
	if err := CreateOrganization(testDB, bad); !errors.Is(err, ErrInvalidEmail) {
		t.Fatalf("expected ErrInvalidEmail, got %v", err)
	}
}

func TestSearchOrganizationsByName(t *testing.T) {
	marker := uniqueKey()
	mustCreateOrganization(t, "Consultora "+marker)

	found, err := SearchOrganizationsByName(testDB, marker)
	if err != nil {
		t.Fatal(err)
	}
	if len(found) != 1 {
		t.Fatalf("expected one match, got %d", len(found))
	}

	none, err := SearchOrganizationsByName(testDB, "")
	if err != nil {
		t.Fatal(err)
	}
	if len(none) != 0 {
		t.Fatalf("blank term must yield no results, got %d", len(none))
	}
}

func TestOrganizationStatusFilterAndDelete(t *testing.T) {
	organization := mustCreateOrganization(t, "Baja "+uniqueKey())

	organization.Status = models.OrganizationInactive
	ok, err := UpdateOrganization(testDB, organization)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("expected update to match")
	}

	inactive, err := GetOrganizationsByStatus(testDB, models.OrganizationInactive)
	if err != nil {
		t.Fatal(err)
	}
	found := false
	for _, o := range inactive {
		if o.ID == organization.ID {
			found = true
		}
	}
	if !found {
		t.Fatal("expected organization among inactive ones")
	}

	ok, err = DeleteOrganization(testDB, organization.ID)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("expected delete to match")
	}
}

func TestRepresentativeLifecycle(t *testing.T) {
	representative := &models.Representative{
		FullName:  "Representante Externo",
		Email:     uniqueEmail(),
		CellPhone: uniquePhone(),
	}
	if err := CreateRepresentative(testDB, representative); err != nil {
		t.Fatal(err)
	}
	if representative.ID == 0 {
		t.Fatal("expected generated id to be written back")
	}

	got, err := GetRepresentativeByID(testDB, representative.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got == nil || got.OrganizationID != nil {
		t.Fatalf("expected unassigned representative, got %+v", got)
	}

	organization := mustCreateOrganization(t, "Receptora "+uniqueKey())
	ok, err := AssignRepresentativeToOrganization(testDB, representative.ID, organization.ID)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("expected assignment to match")
	}

	got, err = GetRepresentativeByID(testDB, representative.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Organization == nil || got.Organization.ID != organization.ID {
		t.Fatalf("organization not hydrated: %+v", got.Organization)
	}

	byOrganization, err := GetRepresentativesByOrganization(testDB, organization.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(byOrganization) != 1 || byOrganization[0].ID != representative.ID {
		t.Fatalf("expected the one representative, got %+v", byOrganization)
	}

	// Deleting the organization unassigns, not deletes, its contacts.
	if _, err := DeleteOrganization(testDB, organization.ID); err != nil {
		t.Fatal(err)
	}
	got, err = GetRepresentativeByID(testDB, representative.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got == nil || got.OrganizationID != nil {
		t.Fatalf("expected representative to survive unassigned, got %+v", got)
	}

	ok, err = DeleteRepresentative(testDB, representative.ID)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("expected delete to match")
	}
}
