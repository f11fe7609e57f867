package entities

// Role representa o nível de privilégio de um perfil no diretório
type Role string

const (
	RoleUser       Role = "user"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "super_admin"
)

// roleLevels define a ordem total entre roles: super_admin > admin > user
var roleLevels = map[Role]int{
	RoleUser:       1,
	RoleAdmin:      2,
	RoleSuperAdmin: 3,
}

// Level retorna o nível numérico do role (0 para role desconhecido)
func (r Role) Level() int {
	return roleLevels[r]
}

// IsValid verifica se o role pertence à enumeração fechada
func (r Role) IsValid() bool {
	_, ok := roleLevels[r]
	return ok
}

// AtLeast verifica se o role tem privilégio maior ou igual ao exigido
func (r Role) AtLeast(required Role) bool {
	return r.IsValid() && r.Level() >= required.Level()
}
