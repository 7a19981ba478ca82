package services

import (
	"shopbench/internal/domain"
	"shopbench/internal/repos"
)

type CatalogService struct {
	Prods *repos.ProductRepo
}

func NewCatalogService(prods *repos.ProductRepo) *CatalogService {
	return &CatalogService{Prods: prods}
}

func (s *CatalogService) GetProductDetail(id int64) (domain.ProductDetail, error) {
	return s.Prods.Detail(id)
}
