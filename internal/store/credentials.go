package store

import (
	"strings" // String manipulation

	"github.com/Sbonga74/sg-bank-web-app/internal/domain" // Importing domain models

	"github.com/sirupsen/logrus" // Logging library
	"golang.org/x/crypto/bcrypt" // Password hashing
	"gorm.io/gorm"               // GORM ORM library
)

// Credentials persists users and verifies their passwords.
type Credentials struct {
	db *gorm.DB
}

// NewCredentials returns a credential store backed by db.
func NewCredentials(db *gorm.DB) *Credentials {
	return &Credentials{db: db}
}

// Register creates a new user with a bcrypt-hashed password and returns its id.
// The username is trimmed of surrounding whitespace before any checks.
func (c *Credentials) Register(username, password string) (uint, error) {
	username = strings.TrimSpace(username)
	// Reject empty fields before touching the database
	if username == "" || password == "" {
		return 0, ErrInvalidInput
	}
	// Pre-check for an existing user so the common case gets a clean error
	var existing domain.User
	if err := c.db.Where("username = ?", username).First(&existing).Error; err == nil {
		return 0, ErrAlreadyExists
	}
	// Hash the password; the stored value is one-way and unrecoverable
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, err
	}
	user := domain.User{Username: username, PasswordHash: string(hash)}
	if err := c.db.Create(&user).Error; err != nil {
		// The unique index backstops a register racing the pre-check
		logrus.WithFields(logrus.Fields{
			"username": username,
			"error":    err.Error(),
		}).Warn("User create failed")
		return 0, ErrAlreadyExists
	}
	logrus.WithFields(logrus.Fields{
		"user_id":  user.ID,
		"username": user.Username,
	}).Info("User registered")
	return user.ID, nil
}

// ByID fetches a user by primary key.
func (c *Credentials) ByID(userID uint) (domain.User, error) {
	var user domain.User
	err := c.db.First(&user, userID).Error
	return user, err
}

// Verify checks a username/password pair and returns the user id on success.
// A missing user and a wrong password are indistinguishable to the caller.
func (c *Credentials) Verify(username, password string) (uint, bool) {
	username = strings.TrimSpace(username)
	var user domain.User
	if err := c.db.Where("username = ?", username).First(&user).Error; err != nil {
		return 0, false
	}
	// bcrypt comparison is constant-time on the hash
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return 0, false
	}
	return user.ID, true
}
