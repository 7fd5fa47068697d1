package services

import (
	"testing"

	"github.com/codeLord61/Exchangify/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDonationToUserNotifiesRecipient(t *testing.T) {
	db := newTestDB(t)
	svc := NewDonationService(db)

	donor := createUser(t, db, "donor@test.com", models.RoleUser)
	recipient := createUser(t, db, "recipient@test.com", models.RoleUser)

	donation, err := svc.Create(donor.ID, models.CreateDonationRequest{
		RecipientType: "user",
		RecipientID:   &recipient.ID,
		ItemName:      "Winter Coat",
		Description:   "Barely worn",
		Condition:     "Like New",
	}, "")
	require.NoError(t, err)
	assert.Equal(t, models.DonationStatusPending, donation.Status)
	assert.False(t, donation.IsAdminDonation)

	notifications := notificationsFor(t, db, recipient.ID)
	require.Len(t, notifications, 1)
	assert.Equal(t, "New Donation Offer", notifications[0].Title)
	assert.Equal(t, models.KindDonation, notifications[0].NotificationType)
}

func TestDonationToPoolNotifiesEveryAdmin(t *testing.T) {
	db := newTestDB(t)
	svc := NewDonationService(db)

	donor := createUser(t, db, "donor@test.com", models.RoleUser)
	adminA := createUser(t, db, "admin-a@test.com", models.RoleAdmin)
	adminB := createUser(t, db, "admin-b@test.com", models.RoleAdmin)

	donation, err := svc.Create(donor.ID, models.CreateDonationRequest{
		RecipientType: "admin",
		ItemName:      "Box of Books",
		Description:   "Assorted novels",
		Condition:     "Good",
	}, "")
	require.NoError(t, err)
	assert.True(t, donation.IsAdminDonation)
	assert.Nil(t, donation.RecipientID)

	require.Len(t, notificationsFor(t, db, adminA.ID), 1)
	require.Len(t, notificationsFor(t, db, adminB.ID), 1)
}

func TestDonationLifecycleNotifiesDonor(t *testing.T) {
	db := newTestDB(t)
	svc := NewDonationService(db)

	donor := createUser(t, db, "donor@test.com", models.RoleUser)
	recipient := createUser(t, db, "recipient@test.com", models.RoleUser)

	donation, err := svc.Create(donor.ID, models.CreateDonationRequest{
		RecipientType: "user",
		RecipientID:   &recipient.ID,
		ItemName:      "Desk Lamp",
		Description:   "Works fine",
		Condition:     "Good",
	}, "")
	require.NoError(t, err)

	_, err = svc.UpdateStatus(recipient.ID, models.RoleUser, donation.ID, models.DonationStatusAccepted)
	require.NoError(t, err)
	_, err = svc.UpdateStatus(recipient.ID, models.RoleUser, donation.ID, models.DonationStatusCompleted)
	require.NoError(t, err)

	notifications := notificationsFor(t, db, donor.ID)
	require.Len(t, notifications, 2)
	assert.Equal(t, "Donation Accepted", notifications[0].Title)
	assert.Equal(t, "Donation Marked as received", notifications[1].Title)
	assert.Contains(t, notifications[1].Message, "marked as received")
}

func TestDonationDeclineIsTerminal(t *testing.T) {
	db := newTestDB(t)
	svc := NewDonationService(db)

	donor := createUser(t, db, "donor@test.com", models.RoleUser)
	recipient := createUser(t, db, "recipient@test.com", models.RoleUser)

	donation, err := svc.Create(donor.ID, models.CreateDonationRequest{
		RecipientType: "user",
		RecipientID:   &recipient.ID,
		ItemName:      "Old Chair",
		Description:   "Still sturdy",
		Condition:     "Fair",
	}, "")
	require.NoError(t, err)

	_, err = svc.UpdateStatus(recipient.ID, models.RoleUser, donation.ID, models.DonationStatusDeclined)
	require.NoError(t, err)

	_, err = svc.UpdateStatus(recipient.ID, models.RoleUser, donation.ID, models.DonationStatusCompleted)
	var cerr *ConflictError
	require.ErrorAs(t, err, &cerr)
}

func TestDonationPoolAdminMayAct(t *testing.T) {
	db := newTestDB(t)
	svc := NewDonationService(db)

	donor := createUser(t, db, "donor@test.com", models.RoleUser)
	admin := createUser(t, db, "admin@test.com", models.RoleAdmin)
	bystander := createUser(t, db, "bystander@test.com", models.RoleUser)

	donation, err := svc.Create(donor.ID, models.CreateDonationRequest{
		RecipientType: "admin",
		ItemName:      "Toy Set",
		Description:   "Complete set",
		Condition:     "Good",
	}, "")
	require.NoError(t, err)

	_, err = svc.UpdateStatus(bystander.ID, models.RoleUser, donation.ID, models.DonationStatusAccepted)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.UpdateStatus(admin.ID, models.RoleAdmin, donation.ID, models.DonationStatusAccepted)
	require.NoError(t, err)

	assert.True(t, CanViewDonation(&models.Donation{
		DonorID:         donor.ID,
		IsAdminDonation: true,
	}, admin.ID, models.RoleAdmin))
	assert.False(t, CanViewDonation(&models.Donation{
		DonorID:         donor.ID,
		IsAdminDonation: true,
	}, bystander.ID, models.RoleUser))
}
