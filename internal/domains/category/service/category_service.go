package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"bookcatalog-backend/internal/domains/category"
	"bookcatalog-backend/pkg/logger"
)

type categoryService struct {
	repo category.CategoryRepository
}

func NewCategoryService(repo category.CategoryRepository) category.CategoryService {
	return &categoryService{repo: repo}
}

func (s *categoryService) Create(ctx context.Context, req *category.CreateCategoryReq) (*category.CategoryResp, error) {
	if req == nil {
		return nil, fmt.Errorf("create category: invalid request")
	}

	entity, err := category.NewCategory(req.Name, req.ParentCategory)
	if err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}

	// Resolve the parent reference before any write. If resolution fails
	// the category must not be created.
	var parent *category.Category
	if entity.ParentID != nil {
		parent, err = s.resolveParent(ctx, *entity.ParentID)
		if err != nil {
			return nil, err
		}
	}

	taken, err := s.repo.ExistsByName(ctx, entity.Name, nil)
	if err != nil {
		return nil, fmt.Errorf("create category: check name uniqueness: %w", err)
	}
	if taken {
		return nil, category.ErrDuplicateName
	}

	created, err := s.repo.Create(ctx, entity)
	if err != nil {
		logger.Error("category create failed", err)
		return nil, err
	}

	return category.CategoryToResp(created, parent), nil
}

func (s *categoryService) GetByID(ctx context.Context, id uuid.UUID) (*category.CategoryResp, error) {
	if id == uuid.Nil {
		return nil, category.ErrInvalidCategoryID
	}

	entity, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	parent, err := s.loadParent(ctx, entity)
	if err != nil {
		return nil, err
	}

	return category.CategoryToResp(entity, parent), nil
}

func (s *categoryService) List(ctx context.Context) ([]category.CategoryResp, error) {
	entities, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	// Every parent is itself part of the full listing, so expansion can be
	// resolved from the result set without further queries.
	byID := make(map[uuid.UUID]*category.Category, len(entities))
	for i := range entities {
		byID[entities[i].ID] = &entities[i]
	}

	resps := make([]category.CategoryResp, 0, len(entities))
	for i := range entities {
		var parent *category.Category
		if pid := entities[i].ParentID; pid != nil {
			parent = byID[*pid]
		}
		resps = append(resps, *category.CategoryToResp(&entities[i], parent))
	}

	return resps, nil
}

func (s *categoryService) Replace(ctx context.Context, id uuid.UUID, req *category.ReplaceCategoryReq) (*category.CategoryResp, error) {
	if id == uuid.Nil {
		return nil, category.ErrInvalidCategoryID
	}
	if req == nil {
		return nil, fmt.Errorf("replace category: invalid request")
	}

	entity, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var parent *category.Category
	if req.ParentCategory != nil {
		if *req.ParentCategory == id {
			return nil, category.ErrCircularParent
		}

		parent, err = s.resolveParent(ctx, *req.ParentCategory)
		if err != nil {
			return nil, err
		}

		// Re-parenting under a descendant would detach the subtree from
		// the root. Walk the new parent's ancestor chain and reject.
		ancestors, err := s.repo.GetAncestors(ctx, parent.ID)
		if err != nil {
			return nil, fmt.Errorf("replace category: load ancestors: %w", err)
		}
		for _, a := range ancestors {
			if a.ID == id {
				return nil, category.ErrCircularParent
			}
		}
	}

	// Compare what will actually be stored; the entity trims on write.
	taken, err := s.repo.ExistsByName(ctx, strings.TrimSpace(req.Name), &id)
	if err != nil {
		return nil, fmt.Errorf("replace category: check name uniqueness: %w", err)
	}
	if taken {
		return nil, category.ErrDuplicateName
	}

	if err := entity.Replace(req.Name, req.ParentCategory); err != nil {
		return nil, fmt.Errorf("replace category: %w", err)
	}

	updated, err := s.repo.Update(ctx, entity)
	if err != nil {
		logger.Error("category replace failed", err)
		return nil, err
	}

	return category.CategoryToResp(updated, parent), nil
}

func (s *categoryService) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return category.ErrInvalidCategoryID
	}

	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}

	hasChildren, err := s.repo.HasChildren(ctx, id)
	if err != nil {
		return fmt.Errorf("delete category: check children: %w", err)
	}
	if hasChildren {
		return category.ErrHasChildren
	}

	bookCount, err := s.repo.CountBooks(ctx, id)
	if err != nil {
		return fmt.Errorf("delete category: count books: %w", err)
	}
	if bookCount > 0 {
		return category.ErrHasBooks
	}

	return s.repo.Delete(ctx, id)
}

// resolveParent fetches the referenced parent, translating a missing record
// into ErrParentNotFound so the 404 lands on the reference, not the resource.
func (s *categoryService) resolveParent(ctx context.Context, parentID uuid.UUID) (*category.Category, error) {
	parent, err := s.repo.GetByID(ctx, parentID)
	if err != nil {
		if errors.Is(err, category.ErrCategoryNotFound) {
			return nil, category.ErrParentNotFound
		}
		return nil, fmt.Errorf("resolve parent: %w", err)
	}
	return parent, nil
}

func (s *categoryService) loadParent(ctx context.Context, entity *category.Category) (*category.Category, error) {
	if entity.ParentID == nil {
		return nil, nil
	}

	parent, err := s.repo.GetByID(ctx, *entity.ParentID)
	if err != nil {
		// A dangling parent reference should not make the record
		// unreadable; serialize without expansion.
		logger.Error("category parent lookup failed", err)
		return nil, nil
	}
	return parent, nil
}
