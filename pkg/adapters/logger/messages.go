package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Scan stage
		"Found %d video files in %s":      "%s 内に %d 個の動画ファイルを検出しました",
		"Cannot read metadata from %s: %s": "%s のメタデータを読み取れません: %s",
		"Cannot stat %s: %s":               "%s の情報を取得できません: %s",

		// Metadata extraction
		"Native MP4 parse of %s failed, trying ffprobe: %s": "%s のMP4解析に失敗、ffprobeを試行中: %s",
		"Decoder supplied %.2f fps for %s":                  "デコーダーから %.2f fps を取得しました: %s",

		// Resolution
		"Selected %s (%s match)":                                           "%s を選択しました (%s マッチ)",
		"Frame %d of %s covers the target instant":                         "%s のフレーム %d が対象時刻を含みます",
		"Target instant is outside every recording; nearest is %s (%s away)": "対象時刻はどの録画にも含まれません。最も近いのは %s (%s 離れています)",

		// Frame grab
		"Clamping frame %d to decoder count %d": "フレーム %d をデコーダーのフレーム数 %d に制限します",

		// Output
		"Frame saved to %s":            "フレームを %s に保存しました",
		"Cannot save frame artifact: %s": "フレーム成果物を保存できません: %s",

		// Cache
		"Catalog of %d records loaded from cache":  "キャッシュから %d 件のカタログを読み込みました",
		"Metadata cache unreadable, rescanning: %s": "メタデータキャッシュを読み取れないため再スキャンします: %s",
		"Cannot write metadata cache: %s":           "メタデータキャッシュを書き込めません: %s",

		// Timings
		"%s in %.3f seconds":        "%s (%.3f 秒)",
		"Scanned directory":         "ディレクトリをスキャンしました",
		"Loaded cached catalog":     "キャッシュからカタログを読み込みました",
		"Resolved frame":            "フレームを解決しました",
		"Decoded frame":             "フレームをデコードしました",
	})
}
