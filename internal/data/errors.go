package data

import "errors"

// Shared sentinel errors for data-layer repositories.
var (
	// User and role sentinels.
	ErrUserNotFound    = errors.New("user not found")
	ErrUserEmailExists = errors.New("user email already exists")
	ErrRoleNotFound    = errors.New("role not found")

	// Permission sentinels.
	ErrPermissionExists = errors.New("permission grant already exists")

	// Settings store sentinels.
	ErrSettingNotFound = errors.New("setting not found")

	// Content record sentinels.
	ErrDesignSystemNotFound    = errors.New("design system not found")
	ErrDesignSystemRepoExists  = errors.New("design system already connected for repository")
	ErrTokenCollectionNotFound = errors.New("token collection not found")
	ErrTokenGroupNotFound      = errors.New("token group not found")
	ErrTokenGroupNameExists    = errors.New("token group name already exists in collection")
	ErrTokenNotFound           = errors.New("token not found")
)
