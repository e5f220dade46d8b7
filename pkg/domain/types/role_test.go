package types_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/standup-lab/standup/pkg/domain/types"
)

func TestRoleValidate(t *testing.T) {
	valid := []types.Role{
		types.RoleAdmin,
		types.RoleProjectManager,
		types.RoleWebDeveloper,
		types.RoleUIUXDesigner,
		types.RoleTester,
	}
	for _, role := range valid {
		t.Run(role.String(), func(t *testing.T) {
			gt.NoError(t, role.Validate())
		})
	}

	t.Run("unknown role is invalid", func(t *testing.T) {
		gt.Error(t, types.Role("INTERN").Validate())
	})

	t.Run("empty role is invalid", func(t *testing.T) {
		gt.Error(t, types.Role("").Validate())
	})

	t.Run("role values are case sensitive", func(t *testing.T) {
		gt.Error(t, types.Role("admin").Validate())
	})
}

func TestDefaultRole(t *testing.T) {
	gt.Value(t, types.DefaultRole).Equal(types.RoleWebDeveloper)
	gt.NoError(t, types.DefaultRole.Validate())
}

func TestIDValidate(t *testing.T) {
	t.Run("generated IDs are valid and distinct", func(t *testing.T) {
		id1 := types.NewUserID()
		id2 := types.NewUserID()
		gt.NoError(t, id1.Validate())
		gt.Value(t, id1).NotEqual(id2)

		gt.NoError(t, types.NewLogID().Validate())
		gt.NoError(t, types.NewCommentID().Validate())
	})

	t.Run("empty IDs are invalid", func(t *testing.T) {
		gt.Error(t, types.UserID("").Validate())
		gt.Error(t, types.LogID("").Validate())
		gt.Error(t, types.CommentID("").Validate())
	})
}
