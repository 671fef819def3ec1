// internal/repository/mock_gen.go
package repository

//go:generate mockgen -source=./access_policy.go -destination=../mocks/mock_access_policy_repository.go -package=mocks AccessPolicyRepositoryIface
//go:generate mockgen -source=./organization_user.go -destination=../mocks/mock_organization_user_repository.go -package=mocks OrganizationUserRepositoryIface
//go:generate mockgen -source=./organization.go -destination=../mocks/mock_organization_repository.go -package=mocks OrganizationRepositoryIface
//go:generate mockgen -source=./user.go -destination=../mocks/mock_user_repository.go -package=mocks UserRepositoryIface
