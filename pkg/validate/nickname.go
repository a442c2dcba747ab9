package validate

import (
	"regexp"
	"strings"
)

var nicknamePattern = regexp.MustCompile(`^[\p{L}\p{N}_\-. ]{1,50}$`)

func IsNickname(nickname string) bool {
	nickname = strings.TrimSpace(nickname)
	return nickname != "" && nicknamePattern.MatchString(nickname)
}
