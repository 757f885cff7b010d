package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Controller messages (info)
		"Opening camera %d":               "カメラ %d を開いています",
		"Capturing every %s into %s":      "%s ごとに %s へ撮影します",
		"Saved %s":                        "%s を保存しました",
		"Camera warmed up":                "カメラのウォームアップが完了しました",
		"Capture stopped after %d frames": "%d 枚で撮影を停止しました",
		"Interrupted, shutting down...":   "中断されました。シャットダウン中...",
		"Output volume has %s free of %s": "出力先ボリュームの空き容量: %s / %s",

		// Gate stage
		"Discarding warm-up frame (%dx%d)": "ウォームアップフレームを破棄します (%dx%d)",
		"Dropping empty frame":             "空のフレームを破棄します",

		// Annotate stage
		"Annotated %dx%d frame with %q": "%dx%d のフレームに %q を描画しました",

		// Archive stage
		"Wrote %d bytes to %s": "%d バイトを %s に書き込みました",

		// Warnings
		"Failed to save debug output: %s":                   "デバッグ出力の保存に失敗しました: %s",
		"Low disk space on output volume: %s free":          "出力先の空き容量が不足しています: 残り %s",
		"Could not determine free space: %s":                "空き容量を取得できませんでした: %s",
		"Clock went backwards, adjusted capture time by %s": "時計が逆行したため撮影時刻を %s 補正しました",

		// Errors
		"Failed to open camera: %s":    "カメラを開けませんでした: %s",
		"Failed to read frame: %s":     "フレームの読み込みに失敗しました: %s",
		"Failed to annotate frame: %s": "フレームへの描画に失敗しました: %s",
		"Failed to archive frame: %s":  "フレームの保存に失敗しました: %s",
		"Capture stopped: %s":          "撮影を停止しました: %s",
	})
}
