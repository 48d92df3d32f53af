package services_test

import (
	"errors"
	"testing"

	"github.com/wet-dev/wet/internal/models"
	"github.com/wet-dev/wet/internal/repository"
	"github.com/wet-dev/wet/internal/services"
	"gorm.io/gorm"
)

func newUserService(database *gorm.DB) *services.UserService {
	return services.NewUserService(
		database,
		repository.NewUserRepository(database),
		repository.NewLikeRepository(database),
	)
}

func TestCreateUser(t *testing.T) {
	database := setupTestDB(t)
	svc := newUserService(database)

	user, err := svc.CreateUser("Kim", "Kim@X.com")

	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	if user.ID == 0 {
		t.Error("Expected an assigned ID")
	}
	if user.Email != "kim@x.com" {
		t.Errorf("Expected normalized email, got %q", user.Email)
	}
	if user.CreatedAt.IsZero() {
		t.Error("Expected CreatedAt to be stamped at creation")
	}
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	database := setupTestDB(t)
	svc := newUserService(database)

	if _, err := svc.CreateUser("Kim", "kim@x.com"); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	_, err := svc.CreateUser("Other Kim", "kim@x.com")

	if !errors.Is(err, services.ErrEmailTaken) {
		t.Fatalf("Expected ErrEmailTaken, got %v", err)
	}
}

func TestGetUserNotFound(t *testing.T) {
	database := setupTestDB(t)
	svc := newUserService(database)

	_, err := svc.GetUser(999)

	if !errors.Is(err, services.ErrUserNotFound) {
		t.Fatalf("Expected ErrUserNotFound, got %v", err)
	}
}

func TestUpdateUser(t *testing.T) {
	database := setupTestDB(t)
	svc := newUserService(database)

	created, err := svc.CreateUser("Kim", "kim@x.com")

	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	updated, err := svc.UpdateUser(created.ID, "Kim Min", "minkim@x.com")

	if err != nil {
		t.Fatalf("UpdateUser failed: %v", err)
	}
	if updated.Name != "Kim Min" || updated.Email != "minkim@x.com" {
		t.Errorf("Unexpected updated user: %+v", updated)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Error("Expected CreatedAt to be immutable across updates")
	}

	// Re-submitting the user's own email is not a conflict.
	if _, err := svc.UpdateUser(created.ID, "Kim Min", "minkim@x.com"); err != nil {
		t.Fatalf("UpdateUser with own email failed: %v", err)
	}
}

func TestUpdateUserNotFound(t *testing.T) {
	database := setupTestDB(t)
	svc := newUserService(database)

	_, err := svc.UpdateUser(999, "Ghost", "ghost@x.com")

	if !errors.Is(err, services.ErrUserNotFound) {
		t.Fatalf("Expected ErrUserNotFound, got %v", err)
	}
}

func TestUpdateUserDuplicateEmail(t *testing.T) {
	database := setupTestDB(t)
	svc := newUserService(database)

	if _, err := svc.CreateUser("Kim", "kim@x.com"); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	lee, err := svc.CreateUser("Lee", "lee@x.com")

	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	_, err = svc.UpdateUser(lee.ID, "Lee", "kim@x.com")

	if !errors.Is(err, services.ErrEmailTaken) {
		t.Fatalf("Expected ErrEmailTaken, got %v", err)
	}
}

func TestDeleteUserCascadesLikes(t *testing.T) {
	database := setupTestDB(t)
	userSvc := newUserService(database)
	restaurantSvc := newRestaurantService(database)

	user, err := userSvc.CreateUser("Kim", "kim@x.com")

	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	if _, err := restaurantSvc.ToggleLike(user.ID, pastaHouse()); err != nil {
		t.Fatalf("ToggleLike failed: %v", err)
	}

	if err := userSvc.DeleteUser(user.ID); err != nil {
		t.Fatalf("DeleteUser failed: %v", err)
	}

	var likeCount int64

	if err := database.Model(&models.RestaurantLike{}).Where("user_id = ?", user.ID).Count(&likeCount).Error; err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if likeCount != 0 {
		t.Errorf("Expected the user's likes to be deleted, got %d rows", likeCount)
	}

	// The restaurant itself stays.
	exists, err := repository.NewRestaurantRepository(database).ExistsByKakaoID("kakao123")

	if err != nil {
		t.Fatalf("ExistsByKakaoID failed: %v", err)
	}
	if !exists {
		t.Error("Expected the restaurant row to survive user deletion")
	}

	if _, err := userSvc.GetUser(user.ID); !errors.Is(err, services.ErrUserNotFound) {
		t.Fatalf("Expected ErrUserNotFound after deletion, got %v", err)
	}
}

func TestDeleteUserNotFound(t *testing.T) {
	database := setupTestDB(t)
	svc := newUserService(database)

	if err := svc.DeleteUser(999); !errors.Is(err, services.ErrUserNotFound) {
		t.Fatalf("Expected ErrUserNotFound, got %v", err)
	}
}
