package services

import (
	"testing"

	"github.com/codeLord61/Exchangify/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func applyTestInstallment(t *testing.T, svc *InstallmentService, userID uint) *models.Installment {
	t.Helper()

	installment, err := svc.Apply(userID, models.ApplyInstallmentRequest{
		Amount:           1500,
		Purpose:          "Laptop for school",
		Duration:         12,
		Income:           2400,
		EmploymentStatus: "employed",
		Employer:         "Acme Corp",
	})
	require.NoError(t, err)
	return installment
}

func TestInstallmentApplyNotifiesAdmins(t *testing.T) {
	db := newTestDB(t)
	svc := NewInstallmentService(db)

	applicant := createUser(t, db, "applicant@test.com", models.RoleUser)
	admin := createUser(t, db, "admin@test.com", models.RoleAdmin)

	installment := applyTestInstallment(t, svc, applicant.ID)
	assert.Equal(t, models.InstallmentStatusPending, installment.Status)

	notifications := notificationsFor(t, db, admin.ID)
	require.Len(t, notifications, 1)
	assert.Equal(t, "New Installment Application", notifications[0].Title)
	assert.Contains(t, notifications[0].Message, "$1500.00")
}

func TestInstallmentApproveRecordsNotesAndNotifies(t *testing.T) {
	db := newTestDB(t)
	svc := NewInstallmentService(db)

	applicant := createUser(t, db, "applicant@test.com", models.RoleUser)
	installment := applyTestInstallment(t, svc, applicant.ID)

	updated, err := svc.UpdateStatus(installment.ID, models.InstallmentStatusApproved, "Income verified")
	require.NoError(t, err)
	assert.Equal(t, models.InstallmentStatusApproved, updated.Status)
	assert.Equal(t, "Income verified", updated.AdminNotes)

	notifications := notificationsFor(t, db, applicant.ID)
	require.Len(t, notifications, 1)
	assert.Equal(t, "Installment Application Approved", notifications[0].Title)
	assert.Contains(t, notifications[0].Message, "$1500.00")
	assert.Contains(t, notifications[0].Message, "approved")
}

func TestInstallmentResolveTwiceConflicts(t *testing.T) {
	db := newTestDB(t)
	svc := NewInstallmentService(db)

	applicant := createUser(t, db, "applicant@test.com", models.RoleUser)
	installment := applyTestInstallment(t, svc, applicant.ID)

	_, err := svc.UpdateStatus(installment.ID, models.InstallmentStatusRejected, "")
	require.NoError(t, err)

	_, err = svc.UpdateStatus(installment.ID, models.InstallmentStatusApproved, "")
	var cerr *ConflictError
	require.ErrorAs(t, err, &cerr)
}

func TestInstallmentRejectsUnknownStatus(t *testing.T) {
	db := newTestDB(t)
	svc := NewInstallmentService(db)

	applicant := createUser(t, db, "applicant@test.com", models.RoleUser)
	installment := applyTestInstallment(t, svc, applicant.ID)

	_, err := svc.UpdateStatus(installment.ID, "completed", "")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
}
