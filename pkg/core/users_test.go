package core_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nipun-munasinghe/Breathsafe-App-sub000/pkg/common"
	. "github.com/nipun-munasinghe/Breathsafe-App-sub000/pkg/core"
	_ "github.com/nipun-munasinghe/Breathsafe-App-sub000/pkg/testing"
)

func TestRegisterAndAuthenticate(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, coreObj, _, _, _ := GetMockCoreWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	email := uuid.NewString() + "@example.com"
	user, err := coreObj.Users.Register(email, "Kamala", "hunter2-but-longer", false)
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.NotEqual(t, "hunter2-but-longer", user.PasswordHash)

	authed, err := coreObj.Users.Authenticate(email, "hunter2-but-longer")
	require.NoError(t, err)
	assert.Equal(t, user.ID, authed.ID)

	_, err = coreObj.Users.Authenticate(email, "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = coreObj.Users.Authenticate("nobody@example.com", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegister_Invalid(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, coreObj, _, _, _ := GetMockCoreWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	_, err := coreObj.Users.Register("", "", "", false)
	require.Error(t, err)
}
