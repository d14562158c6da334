package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/aiboost/internal/validation"
)

func TestRole_Set(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    Role
		wantErr bool
	}{
		{name: "learner", value: "learner", want: RoleLearner},
		{name: "mentor", value: "mentor", want: RoleMentor},
		{name: "admin", value: "admin", want: RoleAdmin},
		{name: "unknown", value: "guest", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var role Role
			err := role.Set(tt.value)
			if tt.wantErr {
				assert.ErrorContains(t, err, "invalid role")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, role)
			assert.Equal(t, tt.value, role.String())
		})
	}
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name    string
		user    *User
		roles   []Role
		wantErr error
	}{
		{name: "signed out", user: nil, roles: []Role{RoleLearner}, wantErr: ErrNotSignedIn},
		{name: "mentor view as mentor", user: &User{Role: RoleMentor}, roles: []Role{RoleMentor, RoleAdmin}},
		{name: "mentor view as admin", user: &User{Role: RoleAdmin}, roles: []Role{RoleMentor, RoleAdmin}},
		{name: "mentor view as learner", user: &User{Role: RoleLearner}, roles: []Role{RoleMentor, RoleAdmin}, wantErr: ErrAccessDenied},
		{name: "suspended admin", user: &User{Role: RoleAdmin, Suspended: true}, roles: []Role{RoleAdmin}, wantErr: ErrAccessDenied},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := RequireRole(tt.user, tt.roles...)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestUser_IsEnrolled(t *testing.T) {
	u := User{EnrolledCourses: []string{"go-101", "ml-201"}}
	assert.True(t, u.IsEnrolled("ml-201"))
	assert.False(t, u.IsEnrolled("rust-101"))
}

func TestFormValidator_Validate(t *testing.T) {
	tests := []struct {
		name         string
		form         any
		wantMessages []string
	}{
		{
			name: "valid registration",
			form: RegisterForm{Name: "Ada", Email: "ada@example.com", Password: "password1", ConfirmPassword: "password1"},
		},
		{
			name:         "mismatched registration passwords",
			form:         RegisterForm{Name: "Ada", Email: "ada@example.com", Password: "password1", ConfirmPassword: "password2"},
			wantMessages: []string{"confirm_password must be equal to Password"},
		},
		{
			name:         "login without password",
			form:         LoginForm{Email: "ada@example.com"},
			wantMessages: []string{"password is a required field"},
		},
		{
			name: "admin update without password",
			form: UserForm{Name: "Grace", Email: "grace@example.com", Role: RoleMentor},
		},
		{
			name:         "admin form with unknown role",
			form:         UserForm{Name: "Grace", Email: "grace@example.com", Role: Role("owner")},
			wantMessages: []string{"role must be one of [learner mentor admin]"},
		},
	}

	fv, err := NewFormValidator()
	require.NoError(t, err)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := fv.Validate(tt.form)
			if len(tt.wantMessages) == 0 {
				assert.NoError(t, err)
				return
			}
			var validationErr *validation.Error
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.wantMessages, validationErr.Messages)
		})
	}
}
