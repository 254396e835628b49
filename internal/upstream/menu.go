package upstream

import (
	"context"
	"fmt"
	"net/http"

	"github.com/mealroll/console-backend-go/internal/domain/menu"
)

func (c *Client) ListMenus(ctx context.Context, token string) ([]menu.FoodMenu, error) {
	var menus []menu.FoodMenu
	if err := c.do(ctx, http.MethodGet, "/api/food-menus/", token, nil, &menus); err != nil {
		return nil, err
	}
	return menus, nil
}

func (c *Client) CreateMenu(ctx context.Context, token string, req menu.CreateMenuRequest) (menu.FoodMenu, error) {
	var created menu.FoodMenu
	if err := c.do(ctx, http.MethodPost, "/api/food-menus/", token, req, &created); err != nil {
		return menu.FoodMenu{}, err
	}
	return created, nil
}

func (c *Client) UpdateMenu(ctx context.Context, token string, req menu.UpdateMenuRequest) (menu.FoodMenu, error) {
	var updated menu.FoodMenu
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/api/food-menu/%d/", req.ID), token, req, &updated); err != nil {
		return menu.FoodMenu{}, err
	}
	return updated, nil
}

func (c *Client) DeleteMenu(ctx context.Context, token string, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/food-menu/%d/", id), token, nil, nil)
}
