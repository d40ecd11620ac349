// описание общих структур данных для всего сервиса
package domain

import (
	"time"
)

// структура пользователя
type User struct {
	ID           string // ID пользователя (uuid)
	Email        string // адрес электронной почты
	PasswordHash string // bcrypt хэш пароля, никогда не отдаётся клиенту
	Name         string // имя пользователя
	About        string // информация о пользователе
	Avatar       string // ссылка на аватар
	CreatedAt    time.Time
}

// структура карточки
type Card struct {
	ID        string   // ID карточки (uuid)
	Name      string   // название карточки
	Link      string   // ссылка на картинку
	OwnerID   string   // ID владельца, выставляется при создании и не меняется
	Likes     []string // ID пользователей, лайкнувших карточку
	CreatedAt time.Time
}
