package store

import "github.com/startupcomply/comply/internal/models"

type CompanyRepository struct {
	kv *KV
}

func NewCompanyRepository(kv *KV) *CompanyRepository {
	return &CompanyRepository{kv: kv}
}

// Get returns nil until the first signup creates the singleton company.
func (repo *CompanyRepository) Get() *models.Company {
	return Read[*models.Company](repo.kv, KeyCompany, nil)
}

// Update overwrites the company record wholesale.
func (repo *CompanyRepository) Update(company models.Company) {
	Write(repo.kv, KeyCompany, company)
}
