package core

import (
	"familytree/testutil"
	"testing"
)

// TestCoreDependsOnDomainOnly keeps the query layer independent of concrete
// storage and blob backends.
func TestCoreDependsOnDomainOnly(t *testing.T) {
	testutil.AssertNoDirectImports(t, ".", testutil.InfraImportForbidden, "core must depend on domain interfaces, not infra")
}
