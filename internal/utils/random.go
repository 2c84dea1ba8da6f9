package utils

import (
	"fmt"
	"math/rand"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/melihkochan/personelplanlama/backend/internal/domain"
)

var commonFirstNames = []string{
	"Ahmet", "Mehmet", "Mustafa", "Ali", "Emre", "Murat", "Hasan", "Hüseyin",
	"Fatma", "Ayşe", "Emine", "Zeynep", "Elif", "Merve", "Deniz", "Cem",
	"Burak", "Serkan", "Gökhan", "Volkan",
}

var commonLastNames = []string{
	"Yılmaz", "Kaya", "Demir", "Çelik", "Şahin", "Yıldız", "Aydın", "Özdemir",
	"Arslan", "Doğan", "Kılıç", "Aslan", "Çetin", "Koç", "Kurt", "Özkan",
}

func GenerateRandomFullName() string {
	return commonFirstNames[rand.Intn(len(commonFirstNames))] + " " + commonLastNames[rand.Intn(len(commonLastNames))]
}

var turkishFold = strings.NewReplacer(
	"ç", "c", "ğ", "g", "ı", "i", "ö", "o", "ş", "s", "ü", "u",
	"Ç", "c", "Ğ", "g", "İ", "i", "Ö", "o", "Ş", "s", "Ü", "u",
)

var digits = "0123456789"

// GenerateUsernameFromFullName lowercases and ASCII-folds the name, then
// appends a few random digits so collisions stay unlikely.
func GenerateUsernameFromFullName(fullName string) string {
	username := turkishFold.Replace(strings.ToLower(strings.ReplaceAll(fullName, " ", "")))

	digitsLength := rand.Intn(3) + 1
	for i := 0; i < digitsLength; i++ {
		username += string(digits[rand.Intn(len(digits))])
	}

	return username
}

func GenerateRandomUser(password string, emailDomainName string) (*domain.User, error) {
	fullName := GenerateRandomFullName()
	username := GenerateUsernameFromFullName(fullName)
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     username,
		PasswordHash: string(passwordHash),
		FullName:     fullName,
		Email:        username + "@" + emailDomainName,
		Role:         domain.RolePlanner,
	}

	return user, nil
}

func GenerateRandomOTP() string {
	return fmt.Sprintf("%06d", rand.Intn(1000000))
}

var letters = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*")

func GenerateRandomPassword(length int) string {
	random_password := make([]rune, length)
	for i := range random_password {
		random_password[i] = letters[rand.Intn(len(letters))]
	}
	return string(random_password)
}

var employeeRoles = []domain.EmployeeRole{
	domain.RoleDriver,
	domain.RoleDeliveryStaff,
}

// GenerateRandomEmployee produces a development-data employee with a code like
// P1042 and a random role.
func GenerateRandomEmployee() *domain.Employee {
	return &domain.Employee{
		Code:     fmt.Sprintf("P%04d", rand.Intn(10000)),
		FullName: GenerateRandomFullName(),
		Role:     employeeRoles[rand.Intn(len(employeeRoles))],
		IsActive: true,
	}
}

var shiftStatuses = []domain.ShiftStatus{
	domain.ShiftStatusDay,
	domain.ShiftStatusNight,
	domain.ShiftStatusNight,
	domain.ShiftStatusNight,
	domain.ShiftStatusEvening,
	domain.ShiftStatusTempAssignment,
	domain.ShiftStatusSick,
	domain.ShiftStatusAnnualLeave,
	domain.ShiftStatusResting,
}

// GenerateRandomShiftStatus is biased toward NIGHT so seeded periods have a
// usable night pool.
func GenerateRandomShiftStatus() domain.ShiftStatus {
	return shiftStatuses[rand.Intn(len(shiftStatuses))]
}
