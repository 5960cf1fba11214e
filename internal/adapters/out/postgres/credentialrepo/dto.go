// Package credentialrepo persists login credentials.
package credentialrepo

import (
	"tastyfood/internal/core/domain/model/credential"
)

// CredentialDTO is the row shape of login_credentials.
type CredentialDTO struct {
	Username       string `gorm:"column:username;primaryKey"`
	Password       string
	UserType       string
	FirstTimeLogin bool
}

// TableName specifies the database table name for credentials.
func (CredentialDTO) TableName() string {
	return "login_credentials"
}

func fromDomain(c *credential.Credential) CredentialDTO {
	return CredentialDTO{
		Username:       c.Username(),
		Password:       c.PasswordHash(),
		UserType:       string(c.Role()),
		FirstTimeLogin: c.IsFirstLogin(),
	}
}

func toDomain(dto CredentialDTO) *credential.Credential {
	return credential.RestoreCredential(dto.Username, dto.Password, credential.Role(dto.UserType), dto.FirstTimeLogin)
}
