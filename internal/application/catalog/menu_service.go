package catalog

import (
	"context"
	"strconv"

	"github.com/mediastorage/backend/internal/domain/catalog"
	"github.com/mediastorage/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// canGetAllMenusSetting gates the full menu listing
const canGetAllMenusSetting = "CanGetAllMenus"

// ConfigurationProvider supplies named application settings to services
type ConfigurationProvider interface {
	GetAppSetting(name string) string
	GetConnectionString(name string) string
}

// MenuService orchestrates menus and their items through the generic
// repository and the unit of work: mutations are staged and take effect on
// Commit, with success judged by the affected-row count.
type MenuService struct {
	uow          shared.UnitOfWork
	menuRepo     shared.Repository[catalog.Menu]
	menuItemRepo shared.Repository[catalog.MenuItem]
	config       ConfigurationProvider
	logger       *zap.Logger
}

// NewMenuService creates a new MenuService
func NewMenuService(
	uow shared.UnitOfWork,
	menuRepo shared.Repository[catalog.Menu],
	menuItemRepo shared.Repository[catalog.MenuItem],
	config ConfigurationProvider,
	logger *zap.Logger,
) *MenuService {
	return &MenuService{
		uow:          uow,
		menuRepo:     menuRepo,
		menuItemRepo: menuItemRepo,
		config:       config,
		logger:       logger,
	}
}

// GetAllMenus returns every menu when the CanGetAllMenus setting parses as a
// boolean. A value that does not parse yields an absent result, not an error.
func (s *MenuService) GetAllMenus(ctx context.Context) ([]MenuView, error) {
	value := s.config.GetAppSetting(canGetAllMenusSetting)
	if _, err := strconv.ParseBool(value); err != nil {
		return nil, nil
	}

	menus, err := s.menuRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]MenuView, len(menus))
	for i, menu := range menus {
		views[i] = MenuView{
			ID:          menu.ID,
			Name:        menu.Name,
			Description: menu.Description,
		}
	}
	return views, nil
}

// GetAllMenusBySelectListItem renders every menu as a choosable option,
// selected when the menu owns a menu item with the given id. A nil id
// selects nothing.
func (s *MenuService) GetAllMenusBySelectListItem(ctx context.Context, id *int64) ([]shared.SelectListItem, error) {
	menus, err := s.menuRepo.GetAll(ctx, shared.Include("MenuItems"))
	if err != nil {
		return nil, err
	}

	items := make([]shared.SelectListItem, len(menus))
	for i, menu := range menus {
		selected := id != nil && menu.OwnsItem(*id)
		items[i] = shared.NewSelectListItem(menu.ID, menu.Name, selected)
	}
	return items, nil
}

// GetMenuByID returns one menu, or nil when absent
func (s *MenuService) GetMenuByID(ctx context.Context, id int64) (*MenuView, error) {
	menu, err := s.menuRepo.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	if menu == nil {
		return nil, nil
	}
	return &MenuView{
		ID:          menu.ID,
		Name:        menu.Name,
		Description: menu.Description,
	}, nil
}

// AddMenu stages a menu insert and commits; success is exactly one affected row
func (s *MenuService) AddMenu(ctx context.Context, view MenuView) (shared.ServiceResult, error) {
	if err := s.menuRepo.Add(&catalog.Menu{
		Name:        view.Name,
		Description: view.Description,
	}); err != nil {
		return shared.ServiceResult{}, err
	}

	affected, err := s.uow.Commit(ctx)
	if err != nil {
		return shared.ServiceResult{}, err
	}
	return shared.AddResult(affected == 1), nil
}

// UpdateMenu stages a menu update and commits; success is exactly one affected row
func (s *MenuService) UpdateMenu(ctx context.Context, view MenuView) (shared.ServiceResult, error) {
	if err := s.menuRepo.Update(&catalog.Menu{
		ID:          view.ID,
		Name:        view.Name,
		Description: view.Description,
	}); err != nil {
		return shared.ServiceResult{}, err
	}

	affected, err := s.uow.Commit(ctx)
	if err != nil {
		return shared.ServiceResult{}, err
	}
	return shared.UpdateResult(affected == 1), nil
}

// RemoveMenu deletes a menu, optionally cascading to its items first. A menu
// with no items cascades silently; without the cascade, surviving items are
// left orphaned on purpose. Success is at least one affected row.
func (s *MenuService) RemoveMenu(ctx context.Context, id int64, cascadeRemove bool) (shared.ServiceResult, error) {
	if cascadeRemove {
		menuItems, err := s.menuItemRepo.GetAll(ctx,
			shared.Where("menu_id = ?", id),
			shared.Include("UserRoles"),
		)
		if err != nil {
			return shared.ServiceResult{}, err
		}
		if len(menuItems) > 0 {
			s.menuItemRepo.DeleteRange(menuItems)
		}
	}

	s.menuRepo.Delete(id)

	affected, err := s.uow.Commit(ctx)
	if err != nil {
		return shared.ServiceResult{}, err
	}
	return shared.RemoveResult(affected > 0), nil
}
