package store

import (
	"time"

	"eldercare-backend/internal/models"
)

func mustTime(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return t
}

// SeedDemoData loads the demo directory and record collections: one elderly
// user, one linked caregiver, and a small history of vitals, check-ins and
// reminders. Safe to call once at startup on an empty store.
func SeedDemoData(s Store) {
	users := []models.User{
		{
			ID:               "1",
			Name:             "John Smith",
			Email:            "john@example.com",
			Phone:            "+1234567890",
			Role:             models.RoleElderly,
			Birthdate:        "1950-05-15",
			EmergencyContact: "+1987654321",
			MedicalInfo: &models.MedicalInfo{
				Allergies:  models.StringList{"Penicillin", "Peanuts"},
				Conditions: models.StringList{"Hypertension", "Diabetes Type 2"},
				BloodType:  "O+",
				DoctorInfo: models.DoctorInfo{Name: "Dr. Jane Wilson", Phone: "+1122334455"},
			},
			Caregivers: models.StringList{"2"},
		},
		{
			ID:      "2",
			Name:    "Rahul Kumar",
			Email:   "rahul@example.com",
			Phone:   "+9876543210",
			Role:    models.RoleCaregiver,
			Elderly: models.StringList{"1"},
		},
	}
	for _, u := range users {
		s.SaveUser(u)
	}

	logs := []models.HealthLog{
		{ID: "1", ElderlyID: "1", Timestamp: mustTime("2023-06-01T08:00:00Z"), Type: models.LogBloodPressure, Value: "120/80", Unit: "mmHg", Notes: "Feeling good today"},
		{ID: "2", ElderlyID: "1", Timestamp: mustTime("2023-06-02T08:00:00Z"), Type: models.LogBloodPressure, Value: "122/82", Unit: "mmHg"},
		{ID: "3", ElderlyID: "1", Timestamp: mustTime("2023-06-03T08:00:00Z"), Type: models.LogBloodPressure, Value: "118/78", Unit: "mmHg", Notes: "After morning walk"},
		{ID: "4", ElderlyID: "1", Timestamp: mustTime("2023-06-01T09:00:00Z"), Type: models.LogBloodSugar, Value: "110", Unit: "mg/dL", Notes: "Before breakfast"},
		{ID: "5", ElderlyID: "1", Timestamp: mustTime("2023-06-02T09:00:00Z"), Type: models.LogBloodSugar, Value: "120", Unit: "mg/dL", Notes: "Before breakfast"},
		{ID: "6", ElderlyID: "1", Timestamp: mustTime("2023-06-03T09:00:00Z"), Type: models.LogBloodSugar, Value: "105", Unit: "mg/dL", Notes: "Before breakfast"},
	}
	for _, l := range logs {
		s.SaveHealthLog(l)
	}

	checkIns := []models.CheckIn{
		{
			ID: "1", ElderlyID: "1", Timestamp: mustTime("2023-06-01T20:00:00Z"),
			MoodRating: 4, Notes: "Had a good day, took a walk in the park", PainLevel: 1,
			Symptoms: models.StringList{},
			Medications: models.MedicationIntakeList{
				{MedicationID: "med1", Taken: true, Time: "2023-06-01T08:00:00Z"},
				{MedicationID: "med2", Taken: true, Time: "2023-06-01T09:30:00Z"},
			},
		},
		{
			ID: "2", ElderlyID: "1", Timestamp: mustTime("2023-06-02T20:00:00Z"),
			MoodRating: 3, Notes: "Feeling a bit tired today", PainLevel: 2,
			Symptoms: models.StringList{"Slight headache"},
			Medications: models.MedicationIntakeList{
				{MedicationID: "med1", Taken: true, Time: "2023-06-02T08:15:00Z"},
				{MedicationID: "med2", Taken: true, Time: "2023-06-02T09:45:00Z"},
			},
		},
	}
	for _, ci := range checkIns {
		s.SaveCheckIn(ci)
	}

	everyDay := []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}
	medications := []models.Medication{
		{
			ID: "med1", ElderlyID: "1", Name: "Lisinopril", Dosage: "10mg", Frequency: "Once daily",
			Schedule:     models.ScheduleSlotList{{Time: "08:00", Days: everyDay}},
			Instructions: "Take with or without food at the same time each day",
			StartDate:    "2023-01-01",
		},
		{
			ID: "med2", ElderlyID: "1", Name: "Metformin", Dosage: "500mg", Frequency: "Twice daily",
			Schedule:     models.ScheduleSlotList{{Time: "09:30", Days: everyDay}, {Time: "19:30", Days: everyDay}},
			Instructions: "Take with meals",
			StartDate:    "2023-01-01",
		},
	}
	for _, m := range medications {
		s.SaveMedication(m)
	}

	s.SaveAppointment(models.Appointment{
		ID: "app1", ElderlyID: "1", Title: "Quarterly Checkup",
		Date: "2023-06-15", Time: "14:00",
		Location: "City Medical Center, Room 305", Notes: "Bring current medication list",
		DoctorName: "Dr. Jane Wilson",
	})

	reminders := []models.Reminder{
		{ID: "1", ElderlyID: "1", Type: models.ReminderMedication, Title: "Blood Pressure Medication", Description: "Take 1 pill with water", Time: "08:00", Recurring: true, Frequency: "daily", RelatedItemID: "med1"},
		{ID: "2", ElderlyID: "1", Type: models.ReminderMedication, Title: "Diabetes Medication", Description: "Take after breakfast", Time: "09:30", Recurring: true, Frequency: "daily", RelatedItemID: "med2"},
		{ID: "3", ElderlyID: "1", Type: models.ReminderHydration, Title: "Drink Water", Description: "At least one glass", Time: "11:00", Recurring: true, Frequency: "daily"},
		{ID: "4", ElderlyID: "1", Type: models.ReminderAppointment, Title: "Doctor Appointment", Description: "Checkup with Dr. Wilson", Time: "14:00", RelatedItemID: "app1"},
	}
	for _, r := range reminders {
		s.SaveReminder(r)
	}
}
