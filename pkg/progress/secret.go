package progress

import "github.com/decker502/batata/pkg/utils"

const (
	// SecretCode 在菜单中输入即可进入隐藏 Boss
	SecretCode = "cappuccino"
	// SecretMessage 识别到隐藏指令时的提示
	SecretMessage = "Comando reconhecido! Entrando na sala secreta."
	// LarryEscapeMessage 击败 Larry 后 Vladmir Cenoura 的通话
	LarryEscapeMessage = "Vladmir Cenoura:\n\n" +
		"Alô, Duque? Está na escuta?\n" +
		"O Larry conseguiu escapar, e ativou o sistema\n" +
		"de segurança da Nave Mãeranha!\n" +
		"É melhor você sair logo daí, estou te esperando\n" +
		"lá fora com a X-Salada. Bora derrubar esse lugar!"
	// InstructionsMessage 操作说明
	InstructionsMessage = "Setas: mover  |  A W S D: atirar  |  P: pausar. Derrote todos os inimigos para abrir a porta!"
)

// IsSecretCode 忽略空白和大小写后整段文字是否等于隐藏指令
func IsSecretCode(text string) bool {
	return utils.NormalizeCommand(text) == SecretCode
}
